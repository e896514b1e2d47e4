package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their assignment and completion state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAll persists changes to a set of order aggregates in one pass.
	UpdateAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetAllUnassigned retrieves orders with no shipment and no completion
	// time, the pool a new shipment draws from.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetOpenByShipment retrieves the orders of a shipment that are not yet
	// completed.
	GetOpenByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*order.Order, error)
}
