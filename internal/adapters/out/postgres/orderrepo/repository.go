package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The destination region is created
// on first reference. A duplicate order id surfaces as a Conflict error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	region := RegionDTO{ID: aggregate.RegionID()}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&region).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause("orderID", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the order's mutable state: the shipment reference and the
// completion time. Weight, region, and delivery windows never change after
// creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"shipment_id":   aggregate.ShipmentID(),
			"complete_time": aggregate.CompleteTime(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAll persists the mutable state of a set of orders in one pass.
func (r *GormOrderRepository) UpdateAll(ctx context.Context, aggregates []*order.Order) error {
	for _, aggregate := range aggregates {
		if err := r.Update(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves an order by id with its delivery windows.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Intervals").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves orders with no shipment and no completion
// time, sorted by weight ascending.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Intervals").
		Where("shipment_id IS NULL AND complete_time IS NULL").
		Order("weight, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetOpenByShipment retrieves the orders of a shipment that are not yet
// completed.
func (r *GormOrderRepository) GetOpenByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Intervals").
		Where("shipment_id = ? AND complete_time IS NULL", shipmentID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
