package queries

import (
	"context"
	"fmt"
	"time"

	"tawsil/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderPageQueryHandler serves the tab-scoped paged listing.
// The visibility filter comes from the domain service, so this handler and
// the unpaged manager listing cannot drift apart on who sees what.
type GetOrderPageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderPageQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewGetOrderPageQueryHandler(db *gorm.DB) GetOrderPageQueryHandler {
	return GetOrderPageQueryHandler{db: db}
}

// Handle executes the paged listing query.
// Orders are returned newest first. HasMore reports whether rows remain
// past this page: offset plus returned count compared against the total.
func (h GetOrderPageQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPageQuery,
) (GetOrderPageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPageQueryResponse{}, err
	}

	filter, err := services.BuildOrderFilter(query.Principal(), query.Tab())
	if err != nil {
		return GetOrderPageQueryResponse{}, err
	}

	where, args := orderFilterSQL(filter)

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT COUNT(*) FROM orders WHERE %s", where), args...,
	).Row()
	if err = countRow.Scan(&total); err != nil {
		return GetOrderPageQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT %s
			FROM orders
			WHERE %s
			ORDER BY created_at DESC
			LIMIT ? OFFSET ?
		`, orderSelectColumns, where),
		append(args, query.Limit(), query.Offset())...,
	).Rows()
	if err != nil {
		return GetOrderPageQueryResponse{}, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]OrderResponse, 0, query.Limit())

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, now)
		if scanErr != nil {
			return GetOrderPageQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return GetOrderPageQueryResponse{}, err
	}

	return GetOrderPageQueryResponse{
		Orders:  orders,
		Total:   total,
		HasMore: int64(query.Offset()+len(orders)) < total,
	}, nil
}
