// Package userrepo implements the repository pattern for the user aggregate.
package userrepo

import (
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email is unique: it is the identity key the authentication layer resolves.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	Name      string
	Image     string
	Role      string
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:    aggregate.ID().Bytes(),
		Email: aggregate.Email(),
		Name:  aggregate.Name(),
		Image: aggregate.Image(),
		Role:  aggregate.Role().String(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.Name, dto.Image, role)
}
