package commands

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"
	"tawsil/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a courier's or administrator's request
// to move an order through its lifecycle, optionally attaching a courier
// note. A StatusUnknown status means no transition is requested and only the
// note changes.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	principal   account.Principal
	status      order.Status
	courierNote *string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// Pass order.StatusUnknown with a non-nil note for a note-only update.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	principal account.Principal,
	status order.Status,
	courierNote *string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setStatus(status, courierNote),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the acting principal.
func (c ChangeOrderStatusCommand) Principal() account.Principal {
	return c.principal
}

// Status returns the requested target status, or order.StatusUnknown for a
// note-only update.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// CourierNote returns the note to attach, or nil to leave it unchanged.
func (c ChangeOrderStatusCommand) CourierNote() *string {
	return c.courierNote
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status, courierNote *string) error {
	if status == order.StatusUnknown {
		if courierNote == nil {
			return errs.NewValueIsRequiredError("status")
		}
		c.courierNote = courierNote
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	c.courierNote = courierNote
	return nil
}
