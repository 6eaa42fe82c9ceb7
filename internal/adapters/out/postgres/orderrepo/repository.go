package orderrepo

import (
	"context"
	"errors"

	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/domain/services"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWhere saves an existing order only if its stored status and delivery
// person still match the given precondition. The WHERE clause carries the
// precondition, so when two writers race from the same observed state, the
// database lets exactly one through; the other updates zero rows and gets a
// conflict error.
func (r *GormOrderRepository) UpdateWhere(
	ctx context.Context,
	aggregate *order.Order,
	precondition ports.TransitionPrecondition,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Where("status = ?", precondition.Status.String())
	if precondition.DeliveryPerson == nil {
		tx = tx.Where("delivery_person IS NULL")
	} else {
		tx = tx.Where("delivery_person = ?", *precondition.DeliveryPerson)
	}

	result := tx.Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, soft-deleted rows included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPage retrieves one page of orders matching the filter, newest first.
func (r *GormOrderRepository) GetPage(
	ctx context.Context,
	filter services.OrderFilter,
	offset, limit int,
) (ports.OrderPage, error) {
	base := applyFilter(r.db.WithContext(ctx).Model(&OrderDTO{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return ports.OrderPage{}, err
	}

	var dtos []OrderDTO
	err := applyFilter(r.db.WithContext(ctx).Model(&OrderDTO{}), filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return ports.OrderPage{}, err
	}

	orders, err := toDomainSlice(dtos)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{Orders: orders, Total: total}, nil
}

// GetAllMatching retrieves every order the filter matches, newest first.
func (r *GormOrderRepository) GetAllMatching(
	ctx context.Context,
	filter services.OrderFilter,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := applyFilter(r.db.WithContext(ctx).Model(&OrderDTO{}), filter).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes an order row permanently.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// CountOverdue counts stored NEW orders whose delivery time has passed.
func (r *GormOrderRepository) CountOverdue(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ?", order.StatusNew.String()).
		Where("delivery_time < NOW()").
		Where("is_deleted = FALSE").
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func applyFilter(tx *gorm.DB, filter services.OrderFilter) *gorm.DB {
	if filter.MatchNone {
		return tx.Where("FALSE")
	}

	if filter.OwnerEmail != "" {
		tx = tx.Where("user_email = ?", filter.OwnerEmail)
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		tx = tx.Where("status IN ?", statuses)
	}

	if filter.RequireUnassigned {
		tx = tx.Where("delivery_person IS NULL")
	}

	if filter.AssignedTo != "" {
		tx = tx.Where("delivery_person = ?", filter.AssignedTo)
	}

	if filter.ExcludeDeleted {
		tx = tx.Where("is_deleted = FALSE")
	}

	return tx
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
