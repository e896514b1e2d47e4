// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their regions and work shifts.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// Region and shift sets are replaced as a whole, never merged.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns the complete courier with its type, regions, and shifts.
	Get(ctx context.Context, id uint64) (*courier.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetType retrieves a courier type by its code.
	GetType(ctx context.Context, code string) (courier.Type, error)
}
