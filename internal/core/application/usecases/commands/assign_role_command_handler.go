package commands

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"
)

// AssignRoleCommandHandler handles administrator-driven role changes.
type AssignRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAssignRoleCommandHandler creates a handler for role assignment.
func NewAssignRoleCommandHandler(uowFactory UserUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role assignment command.
func (h AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Principal().Role() != account.RoleAdmin {
		return errs.NewForbiddenError("only an admin may assign roles")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = user.AssignRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
