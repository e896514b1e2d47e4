package shipmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Get retrieves a shipment by id.
func (r *GormShipmentRepository) Get(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentID", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByCourier retrieves the courier's latest shipment when it is
// still open. Activity is derived from the null completion time of the
// most recent shipment, never from a stored flag.
func (r *GormShipmentRepository) GetActiveByCourier(ctx context.Context, courierID uint64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Order("assign_time DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierID", courierID)
		}
		return nil, err
	}

	if dto.CompleteTime != nil {
		return nil, errs.NewObjectNotFoundError("courierID", courierID)
	}

	return toDomain(dto)
}

// GetAllCompletedByCourier retrieves every closed shipment of the courier.
func (r *GormShipmentRepository) GetAllCompletedByCourier(ctx context.Context, courierID uint64) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND complete_time IS NOT NULL", courierID).
		Order("assign_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
