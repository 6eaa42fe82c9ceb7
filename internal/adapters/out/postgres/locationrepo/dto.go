// Package locationrepo implements the repository pattern for destination templates.
package locationrepo

import (
	"time"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting location templates.
type LocationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	MapLink   string
	CreatedAt time.Time
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		MapLink:   aggregate.MapLink(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(id, dto.Name, dto.MapLink, dto.CreatedAt)
}
