package queries

import (
	"context"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllLocationsQueryHandler serves the destination template listing.
type GetAllLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLocationsQueryHandler creates a handler for location listings.
func NewGetAllLocationsQueryHandler(db *gorm.DB) GetAllLocationsQueryHandler {
	return GetAllLocationsQueryHandler{db: db}
}

// Handle executes the location listing query, newest first.
func (h GetAllLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLocationsQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Principal().HasAnyRole(account.RoleAdmin, account.RoleManager) {
		return nil, errs.NewForbiddenError("only a manager or an admin may list locations")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			map_link,
			created_at
		FROM locations
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]LocationResponse, 0)

	for rows.Next() {
		var (
			resp LocationResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name, &resp.MapLink, &resp.CreatedAt); err != nil {
			return nil, err
		}

		locationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = locationID

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
