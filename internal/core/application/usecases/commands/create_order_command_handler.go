package commands

import (
	"context"
	"time"

	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Any assigned role may register an order; the acting principal becomes the
// owner recorded on it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order starts in NEW status with no courier assigned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().Role().IsAssigned() {
		return errs.NewForbiddenError("a role is required to create orders")
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Principal().Email(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
