package commands

import (
	"context"

	"tawsil/internal/pkg/errs"
)

// EditOrderCommandHandler handles detail edits on existing orders.
// The aggregate enforces who may edit and in which status.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// a soft-deleted order does not exist for anyone but an admin
	if !aggregate.VisibleTo(cmd.Principal()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = aggregate.Edit(cmd.Principal(), cmd.Details()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
