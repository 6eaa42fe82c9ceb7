package ports

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are keyed by email for identity resolution and by UUID for
// administration endpoints.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user aggregate by email.
	// Returns an object-not-found error when no such user exists.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetAll retrieves every user, newest first.
	GetAll(ctx context.Context) ([]*account.User, error)
}
