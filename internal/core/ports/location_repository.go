package ports

import (
	"context"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for reusable
// destination templates.
type LocationRepository interface {
	// Add persists a new location template.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location template.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location template by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetAll retrieves every location template, newest first.
	GetAll(ctx context.Context) ([]*location.Location, error)

	// Delete removes a location template permanently.
	Delete(ctx context.Context, id kernel.UUID) error
}
