package queries

import (
	"errors"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves the user directory for administration.
type GetAllUsersQuery struct { //nolint:recvcheck //using for validation
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a user directory query.
func NewGetAllUsersQuery(principal account.Principal) (GetAllUsersQuery, error) {
	q := GetAllUsersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPrincipal(principal); err != nil {
		return GetAllUsersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetAllUsersQuery) Principal() account.Principal {
	return q.principal
}

func (q *GetAllUsersQuery) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}

// UserResponse is the read model of a user directory entry. Only profile
// and role data leave the database; nothing credential-like is stored.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Image     string
	Role      string
	CreatedAt time.Time
}
