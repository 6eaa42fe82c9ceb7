package ports

import (
	"context"

	"tawsil/internal/core/domain/model/account"
)

// PrincipalResolver resolves the identity attached to a request into a
// Principal with its stored role. An identity that has never claimed a role
// resolves to a roleless principal, not an error; an absent identity is an
// unauthenticated error.
type PrincipalResolver interface {
	Resolve(ctx context.Context, email string) (account.Principal, error)
}
