package ports

import (
	"context"

	"dispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error)

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetActiveByCourier retrieves the courier's latest shipment if it has
	// not been closed yet. Returns an ObjectNotFoundError when the courier
	// has no shipments or the latest one is already closed.
	GetActiveByCourier(ctx context.Context, courierID uint64) (*shipment.Shipment, error)

	// GetAllCompletedByCourier retrieves every closed shipment of the
	// courier, the input of the rating and earnings reports.
	GetAllCompletedByCourier(ctx context.Context, courierID uint64) ([]*shipment.Shipment, error)
}
