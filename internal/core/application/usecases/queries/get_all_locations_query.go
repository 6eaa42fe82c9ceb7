package queries

import (
	"errors"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/guard"
)

var ErrGetAllLocationsQueryIsNotConstructed = errors.New(
	"GetAllLocationsQuery must be created via NewGetAllLocationsQuery constructor",
)

// GetAllLocationsQuery retrieves every destination template.
// Managers and administrators read the list; it pre-fills order creation forms.
type GetAllLocationsQuery struct { //nolint:recvcheck //using for validation
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAllLocationsQuery creates a location listing query.
func NewGetAllLocationsQuery(principal account.Principal) (GetAllLocationsQuery, error) {
	q := GetAllLocationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPrincipal(principal); err != nil {
		return GetAllLocationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLocationsQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetAllLocationsQuery) Principal() account.Principal {
	return q.principal
}

func (q *GetAllLocationsQuery) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}

// LocationResponse is the read model of a destination template.
type LocationResponse struct {
	ID        kernel.UUID
	Name      string
	MapLink   string
	CreatedAt time.Time
}
