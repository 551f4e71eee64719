package reportrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTripReportRepository implements TripReportRepository using GORM.
type GormTripReportRepository struct {
	db *gorm.DB
}

// NewGormTripReportRepository creates a new GORM trip report repository.
func NewGormTripReportRepository(db *gorm.DB) *GormTripReportRepository {
	return &GormTripReportRepository{db: db}
}

// GetByTripID retrieves the report of a trip with its event log in admission order.
func (r *GormTripReportRepository) GetByTripID(
	ctx context.Context, tripID kernel.UUID,
) (*report.TripReport, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dto TripReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "trip_id = ?", tripID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tripReport", tripID.String())
		}
		return nil, err
	}

	var eventDTOs []TripReportEventDTO
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", dto.TripID).
		Order("created_at, id").
		Find(&eventDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, eventDTOs)
}

// Upsert inserts or fully replaces the report row for the report's trip.
func (r *GormTripReportRepository) Upsert(ctx context.Context, tripReport *report.TripReport) error {
	dto, err := fromDomain(tripReport)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// AddReportEvent appends one entry to the report's raw event log.
// Replaying an already recorded event is a no-op.
func (r *GormTripReportRepository) AddReportEvent(ctx context.Context, event report.ReportEvent) error {
	dto := fromDomainEvent(event)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
