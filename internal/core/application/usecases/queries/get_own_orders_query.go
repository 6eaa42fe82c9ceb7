package queries

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/guard"
)

var ErrGetOwnOrdersQueryIsNotConstructed = errors.New(
	"GetOwnOrdersQuery must be created via NewGetOwnOrdersQuery constructor",
)

// GetOwnOrdersQuery retrieves the requesting principal's full order view
// without paging. For a manager that is every order they created; for an
// administrator, the whole collection.
type GetOwnOrdersQuery struct { //nolint:recvcheck //using for validation
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetOwnOrdersQuery creates an unpaged listing query.
func NewGetOwnOrdersQuery(principal account.Principal) (GetOwnOrdersQuery, error) {
	q := GetOwnOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPrincipal(principal); err != nil {
		return GetOwnOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnOrdersQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetOwnOrdersQuery) Principal() account.Principal {
	return q.principal
}

func (q *GetOwnOrdersQuery) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}
