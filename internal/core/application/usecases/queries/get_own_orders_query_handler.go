package queries

import (
	"context"
	"fmt"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOwnOrdersQueryHandler serves the unpaged per-principal listing.
type GetOwnOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnOrdersQueryHandler creates a handler for unpaged order listings.
func NewGetOwnOrdersQueryHandler(db *gorm.DB) GetOwnOrdersQueryHandler {
	return GetOwnOrdersQueryHandler{db: db}
}

// Handle executes the unpaged listing query, newest orders first.
// Managers and couriers get their own non-deleted orders; administrators
// get everything.
func (h GetOwnOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOwnOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := ownOrdersFilter(query.Principal())
	if err != nil {
		return nil, err
	}

	where, args := orderFilterSQL(filter)

	rows, err := h.db.WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT %s
			FROM orders
			WHERE %s
			ORDER BY created_at DESC
		`, orderSelectColumns, where),
		args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// ownOrdersFilter scopes the unpaged listing. The owner rule applies to
// couriers exactly as it does to managers; the courier tab views belong to
// the paged listing only. Administrators keep their everything filter.
func ownOrdersFilter(principal account.Principal) (services.OrderFilter, error) {
	if principal.Role() == account.RoleMurasel {
		return services.OrderFilter{
			OwnerEmail:     principal.Email(),
			ExcludeDeleted: true,
		}, nil
	}

	return services.BuildOrderFilter(principal, services.TabUnspecified)
}
