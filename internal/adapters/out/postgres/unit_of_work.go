// Package postgres provides a GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains a list of aggregates affected by a business
// transaction and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern
// using GORM's transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CourierRepository returns a courier repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on every add or update,
// enabling post-commit processing such as domain event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
