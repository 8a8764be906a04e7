package riderrepo

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/rider"
	"foodmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider to the database.
//
// When the aggregate carries an active order, the write is conditional on
// the stored column being empty or already holding the same order, so two
// dispatchers booking the rider concurrently cannot both win. The loser
// gets errs.ErrVersionIsInvalid. Releases and availability toggles are
// written unconditionally.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	values := map[string]any{
		"name":            dto.Name,
		"available":       dto.Available,
		"active_order_id": dto.ActiveOrderID,
	}

	query := r.db.WithContext(ctx).Model(&RiderDTO{})
	if dto.ActiveOrderID != nil {
		query = query.Where(
			"id = ? AND (active_order_id IS NULL OR active_order_id = ?)",
			dto.ID, *dto.ActiveOrderID,
		)
	} else {
		query = query.Where("id = ?", dto.ID)
	}

	result := query.Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if dto.ActiveOrderID != nil {
			return errs.NewVersionIsInvalidErrorWithCause(
				"rider",
				errors.New("rider is missing or already booked for another order"),
			)
		}
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree retrieves all riders who are on shift with no active order.
func (r *GormRiderRepository) GetAllFree(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	err := r.db.WithContext(ctx).
		Where("available = ? AND active_order_id IS NULL", true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, restored)
	}

	return riders, nil
}
