package triprepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip to the database.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, eventDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.insertEvents(ctx, eventDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trip to the database.
// The trip row is updated and any new event rows are inserted. Event rows
// already present are left untouched, the log is append-only.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, eventDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TripDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.insertEvents(ctx, eventDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trip by ID with its event history in admission order.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip", id.String())
		}
		return nil, err
	}

	var eventDTOs []TripEventDTO
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", dto.ID).
		Order("created_at, id").
		Find(&eventDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, eventDTOs)
}

func (r *GormTripRepository) insertEvents(ctx context.Context, eventDTOs []TripEventDTO) error {
	if len(eventDTOs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&eventDTOs).Error
}
