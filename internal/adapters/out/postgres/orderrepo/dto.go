// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so rows stay readable in psql; line
// items live in a jsonb column since nothing queries into them.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserEmail      string    `gorm:"index"`
	CustomerName   string
	Location       string
	MapLink        string
	DeliveryTime   time.Time
	ReceiverName   string
	ReceiverPhone  string
	Note           string
	Items          []byte `gorm:"type:jsonb"`
	Status         string `gorm:"index"`
	DeliveryPerson *string `gorm:"index"`
	StartedAt      *time.Time
	EndedAt        *time.Time
	CourierNote    string
	IsDeleted      bool `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

type itemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	details := aggregate.Details()

	items := make([]itemDTO, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, itemDTO{Name: item.Name(), Quantity: item.Quantity()})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		UserEmail:      aggregate.UserEmail(),
		CustomerName:   details.CustomerName,
		Location:       details.Location,
		MapLink:        details.MapLink,
		DeliveryTime:   details.DeliveryTime,
		ReceiverName:   details.ReceiverName,
		ReceiverPhone:  details.ReceiverPhone,
		Note:           details.Note,
		Items:          rawItems,
		Status:         aggregate.Status().String(),
		DeliveryPerson: aggregate.DeliveryPerson(),
		StartedAt:      aggregate.StartedAt(),
		EndedAt:        aggregate.EndedAt(),
		CourierNote:    aggregate.CourierNote(),
		IsDeleted:      aggregate.IsDeleted(),
		CreatedAt:      aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Name, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:        id,
		UserEmail: dto.UserEmail,
		Details: order.Details{
			CustomerName:  dto.CustomerName,
			Location:      dto.Location,
			MapLink:       dto.MapLink,
			DeliveryTime:  dto.DeliveryTime,
			ReceiverName:  dto.ReceiverName,
			ReceiverPhone: dto.ReceiverPhone,
			Note:          dto.Note,
			Items:         items,
		},
		Status:         status,
		DeliveryPerson: dto.DeliveryPerson,
		StartedAt:      dto.StartedAt,
		EndedAt:        dto.EndedAt,
		CourierNote:    dto.CourierNote,
		IsDeleted:      dto.IsDeleted,
		CreatedAt:      dto.CreatedAt,
	})
}

// updateColumns renders the DTO as an explicit column map so zero values
// (cleared note, is_deleted back to false) are written rather than skipped.
func updateColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"user_email":      dto.UserEmail,
		"customer_name":   dto.CustomerName,
		"location":        dto.Location,
		"map_link":        dto.MapLink,
		"delivery_time":   dto.DeliveryTime,
		"receiver_name":   dto.ReceiverName,
		"receiver_phone":  dto.ReceiverPhone,
		"note":            dto.Note,
		"items":           dto.Items,
		"status":          dto.Status,
		"delivery_person": dto.DeliveryPerson,
		"started_at":      dto.StartedAt,
		"ended_at":        dto.EndedAt,
		"courier_note":    dto.CourierNote,
		"is_deleted":      dto.IsDeleted,
	}
}
