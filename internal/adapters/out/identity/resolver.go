// Package identity resolves authenticated request identities into domain
// principals. Authentication itself happens upstream (the deployment fronts
// the service with an OAuth proxy); this adapter trusts the identity the
// proxy injects and attaches the role stored for it.
package identity

import (
	"context"
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"
)

// RepositoryPrincipalResolver looks the identity up in the user store.
// An identity without a row resolves to a roleless principal: first-time
// sign-ins exist before they claim a role.
type RepositoryPrincipalResolver struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRepositoryPrincipalResolver creates a resolver backed by the user repository.
func NewRepositoryPrincipalResolver(uowFactory ports.UnitOfWorkFactory) *RepositoryPrincipalResolver {
	return &RepositoryPrincipalResolver{uowFactory: uowFactory}
}

// Resolve returns the principal for an authenticated email.
func (r *RepositoryPrincipalResolver) Resolve(ctx context.Context, email string) (account.Principal, error) {
	if email == "" {
		return account.Principal{}, errs.NewUnauthenticatedError()
	}

	user, err := r.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return account.NewPrincipal(email, account.RoleNone)
	}
	if err != nil {
		return account.Principal{}, err
	}

	return user.Principal()
}
