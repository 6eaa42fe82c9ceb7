package commands

import (
	"context"
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
)

// ClaimRoleCommandHandler handles role self-assignment.
//
// The user record is created lazily: an identity that signs in for the
// first time has no row yet, so the claim both registers the user and sets
// the role in one step. A user who already holds a role cannot claim again;
// the aggregate rejects that and the caller sees a forbidden response.
type ClaimRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewClaimRoleCommandHandler creates a handler for role claims.
func NewClaimRoleCommandHandler(uowFactory UserUoWFactory) ClaimRoleCommandHandler {
	return ClaimRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role claim command.
func (h ClaimRoleCommandHandler) Handle(ctx context.Context, cmd ClaimRoleCommand) error {
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

	userRepo := uow.UserRepository()

	user, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		user, err = account.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), cmd.Image())
		if err != nil {
			return err
		}
		if err = user.ClaimRole(cmd.Role()); err != nil {
			return err
		}
		if err = userRepo.Add(ctx, user); err != nil {
			return err
		}

	case err != nil:
		return err

	default:
		if err = user.ClaimRole(cmd.Role()); err != nil {
			return err
		}
		if err = userRepo.Update(ctx, user); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
