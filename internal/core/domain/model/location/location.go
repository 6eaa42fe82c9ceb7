// Package location contains reusable delivery destination templates.
// A location is a simple lookup record with no lifecycle coupling to
// orders: it pre-fills order creation fields and nothing more.
package location

import (
	"errors"
	"time"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a named destination template with its map link.
type Location struct {
	id        kernel.UUID
	name      string
	mapLink   string
	createdAt time.Time

	isConstructed bool
}

// NewLocation creates a location template. Name and map link are required.
func NewLocation(id kernel.UUID, name, mapLink string, createdAt time.Time) (*Location, error) {
	l := &Location{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setMapLink(mapLink),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation reconstructs a location from persistence.
func RestoreLocation(id kernel.UUID, name, mapLink string, createdAt time.Time) (*Location, error) {
	return NewLocation(id, name, mapLink, createdAt)
}

// Validate ensures the Location was created via a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the display name.
func (l *Location) Name() string {
	return l.name
}

// MapLink returns the map URL.
func (l *Location) MapLink() string {
	return l.mapLink
}

// CreatedAt returns the creation instant.
func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

// Rename replaces the name and map link, both required.
func (l *Location) Rename(name, mapLink string) error {
	return errors.Join(
		l.setName(name),
		l.setMapLink(mapLink),
	)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setMapLink(mapLink string) error {
	if mapLink == "" {
		return errs.NewValueIsRequiredError("mapLink")
	}
	l.mapLink = mapLink
	return nil
}
