// Package ports defines repository interfaces for the delivery coordination
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/domain/services"
)

// OrderPage is one page of a filtered listing together with the total number
// of orders the filter matches, so callers can tell whether more pages exist.
type OrderPage struct {
	Orders []*order.Order
	Total  int64
}

// TransitionPrecondition captures the state an order was observed in before a
// status transition was computed. UpdateWhere re-checks it inside the UPDATE
// so two racing writers cannot both apply a transition from the same
// observation: exactly one wins, the loser sees a conflict.
type TransitionPrecondition struct {
	Status         order.Status
	DeliveryPerson *string
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWhere persists changes to an existing order only if its stored
	// status and delivery person still match the given precondition.
	// Returns a conflict error when another writer got there first.
	UpdateWhere(ctx context.Context, aggregate *order.Order, precondition TransitionPrecondition) error

	// Get retrieves an order aggregate by its unique identifier, including
	// soft-deleted records. Visibility of deleted orders is a caller concern.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPage retrieves one page of orders matching the filter, newest
	// first, along with the total match count.
	GetPage(ctx context.Context, filter services.OrderFilter, offset, limit int) (OrderPage, error)

	// GetAllMatching retrieves every order the filter matches, newest first.
	// Used by the unpaged manager listing.
	GetAllMatching(ctx context.Context, filter services.OrderFilter) ([]*order.Order, error)

	// Delete removes an order row permanently. Soft deletion goes through
	// Update with the aggregate's deleted flag set instead.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountOverdue counts stored NEW orders whose delivery time has passed.
	CountOverdue(ctx context.Context) (int64, error)
}
