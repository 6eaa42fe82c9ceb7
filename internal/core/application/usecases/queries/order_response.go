// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight
// from the database, returning plain response structs.
package queries

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/domain/services"

	"github.com/google/uuid"
)

// ItemResponse is one line item of an order listing.
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the read model of a single order. Status carries the
// display status: a stored NEW order past its delivery time reads as late.
type OrderResponse struct {
	ID             kernel.UUID
	UserEmail      string
	CustomerName   string
	Location       string
	MapLink        string
	DeliveryTime   time.Time
	ReceiverName   string
	ReceiverPhone  string
	Note           string
	Items          []ItemResponse
	Status         string
	DeliveryPerson *string
	StartedAt      *time.Time
	EndedAt        *time.Time
	CourierNote    string
	IsDeleted      bool
	CreatedAt      time.Time
}

const orderSelectColumns = `
	id,
	user_email,
	customer_name,
	location,
	map_link,
	delivery_time,
	receiver_name,
	receiver_phone,
	note,
	items,
	status,
	delivery_person,
	started_at,
	ended_at,
	courier_note,
	is_deleted,
	created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner, now time.Time) (OrderResponse, error) {
	var (
		resp           OrderResponse
		id             uuid.UUID
		note           sql.NullString
		items          []byte
		status         string
		deliveryPerson sql.NullString
		startedAt      sql.NullTime
		endedAt        sql.NullTime
		courierNote    sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.UserEmail,
		&resp.CustomerName,
		&resp.Location,
		&resp.MapLink,
		&resp.DeliveryTime,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&note,
		&items,
		&status,
		&deliveryPerson,
		&startedAt,
		&endedAt,
		&courierNote,
		&resp.IsDeleted,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	storedStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status = storedStatus.Display(resp.DeliveryTime, now).String()

	resp.Note = note.String
	resp.CourierNote = courierNote.String

	if deliveryPerson.Valid {
		resp.DeliveryPerson = &deliveryPerson.String
	}
	if startedAt.Valid {
		t := startedAt.Time
		resp.StartedAt = &t
	}
	if endedAt.Valid {
		t := endedAt.Time
		resp.EndedAt = &t
	}

	if len(items) > 0 {
		if err = json.Unmarshal(items, &resp.Items); err != nil {
			return OrderResponse{}, err
		}
	}

	return resp, nil
}

// orderFilterSQL renders an OrderFilter as a WHERE clause fragment with its
// positional arguments. The fragment always contains at least one predicate
// so callers can prepend WHERE unconditionally.
func orderFilterSQL(filter services.OrderFilter) (string, []any) {
	if filter.MatchNone {
		return "FALSE", nil
	}

	conditions := []string{"TRUE"}
	args := []any{}

	if filter.OwnerEmail != "" {
		conditions = append(conditions, "user_email = ?")
		args = append(args, filter.OwnerEmail)
	}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, "?")
			args = append(args, status.String())
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}

	if filter.RequireUnassigned {
		conditions = append(conditions, "delivery_person IS NULL")
	}

	if filter.AssignedTo != "" {
		conditions = append(conditions, "delivery_person = ?")
		args = append(args, filter.AssignedTo)
	}

	if filter.ExcludeDeleted {
		conditions = append(conditions, "is_deleted = FALSE")
	}

	return strings.Join(conditions, " AND "), args
}
