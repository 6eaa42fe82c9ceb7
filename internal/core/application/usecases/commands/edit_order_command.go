package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to replace the details of a NEW
// order. Edits past the NEW status are rejected by the aggregate.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal account.Principal
	details   order.Details

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an order's details.
func NewEditOrderCommand(
	orderID kernel.UUID,
	principal account.Principal,
	details order.Details,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return EditOrderCommand{}, err
	}

	cmd.details = details

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the acting principal.
func (c EditOrderCommand) Principal() account.Principal {
	return c.principal
}

// Details returns the replacement order details.
func (c EditOrderCommand) Details() order.Details {
	return c.details
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
