package commands

import (
	"context"
	"time"

	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles lifecycle transitions.
//
// Acceptance is a race: two couriers can both see the same NEW order and
// claim it concurrently. The handler captures the status and assignment it
// observed before mutating the aggregate, then persists with UpdateWhere so
// the write only lands if that observation still holds. The loser of the
// race gets a conflict error instead of silently stealing the order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	precondition := ports.TransitionPrecondition{
		Status:         aggregate.Status(),
		DeliveryPerson: aggregate.DeliveryPerson(),
	}

	if cmd.Status() != order.StatusUnknown {
		if err = aggregate.TransitionTo(cmd.Principal(), cmd.Status(), time.Now().UTC()); err != nil {
			return err
		}
	}

	if note := cmd.CourierNote(); note != nil {
		if err = aggregate.SetCourierNote(cmd.Principal(), *note); err != nil {
			return err
		}
	}

	if err = orderRepo.UpdateWhere(ctx, aggregate, precondition); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
