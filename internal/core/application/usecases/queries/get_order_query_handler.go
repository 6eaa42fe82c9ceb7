package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves single-order reads.
// A soft-deleted order is indistinguishable from a missing one for every
// role except admin.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the single-order query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT %s FROM orders WHERE id = ?", orderSelectColumns),
		query.OrderID().Bytes(),
	).Row()

	resp, err := scanOrderRow(row, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.IsDeleted && query.Principal().Role() != account.RoleAdmin {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	return resp, nil
}
