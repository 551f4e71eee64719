package routerepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves a new route to the database. Used at provisioning time,
// trip workflows only read routes.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIDs retrieves the identifiers of all known routes.
func (r *GormRouteRepository) GetAllIDs(ctx context.Context) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Order("origin, destination").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
