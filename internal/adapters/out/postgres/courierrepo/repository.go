package courierrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database. Referenced regions are created
// on the fly. A duplicate courier id surfaces as a Conflict error.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.ensureRegions(ctx, aggregate.RegionIDs()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Type").Create(&dto).Error; err != nil {
		return asConflict(err, "courierID")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing courier to the database. Region and shift sets
// are replaced wholesale: prior rows are deleted and the current sets
// inserted within the ambient transaction.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.ensureRegions(ctx, aggregate.RegionIDs()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Update("type_code", dto.TypeCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courierID", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).
		Where("courier_id = ?", dto.ID).Delete(&CourierRegionDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Regions) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Regions).Error; err != nil {
			return asConflict(err, "regionIDs")
		}
	}

	if err := r.db.WithContext(ctx).
		Where("courier_id = ?", dto.ID).Delete(&CourierShiftDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Shifts) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Shifts).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by id with its type, regions, and shifts.
func (r *GormCourierRepository) Get(ctx context.Context, id uint64) (*courier.Courier, error) {
	var dto CourierDTO
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Regions").
		Preload("Shifts").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered courier.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Regions").
		Preload("Shifts").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// GetType retrieves a courier type by its code.
func (r *GormCourierRepository) GetType(ctx context.Context, code string) (courier.Type, error) {
	var dto CourierTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Type{}, errs.NewObjectNotFoundError("typeCode", code)
		}
		return courier.Type{}, err
	}

	return typeToDomain(dto)
}

// ensureRegions creates region rows for ids seen for the first time.
func (r *GormCourierRepository) ensureRegions(ctx context.Context, regionIDs []uint64) error {
	if len(regionIDs) == 0 {
		return nil
	}

	regions := make([]RegionDTO, 0, len(regionIDs))
	for _, id := range regionIDs {
		regions = append(regions, RegionDTO{ID: id})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&regions).Error
}

// typeToDomain converts a courier type DTO to its domain value object.
func typeToDomain(dto CourierTypeDTO) (courier.Type, error) {
	capacity, err := kernel.NewWeight(dto.Capacity)
	if err != nil {
		return courier.Type{}, err
	}
	return courier.NewType(dto.Code, capacity)
}

// asConflict translates a postgres unique violation into a Conflict error
// and passes every other error through unchanged.
func asConflict(err error, paramName string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}
