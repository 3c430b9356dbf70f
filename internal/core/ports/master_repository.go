// Package ports defines repository interfaces for the field-service domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
)

// MasterRepository defines the persistence contract for master aggregates.
type MasterRepository interface {
	// Add persists a new master aggregate to storage.
	Add(ctx context.Context, aggregate *master.Master) error

	// Update persists changes to an existing master aggregate.
	Update(ctx context.Context, aggregate *master.Master) error

	// Get retrieves a master aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*master.Master, error)

	// GetAll retrieves every master regardless of availability.
	GetAll(ctx context.Context) ([]*master.Master, error)

	// GetAllAvailable retrieves the masters currently accepting new orders.
	// Used by the assignment workflow to build the candidate list.
	GetAllAvailable(ctx context.Context) ([]*master.Master, error)

	// CountActiveOrders returns the number of orders in the assigned or
	// in_progress statuses currently referencing the given master. The count
	// is the master's workload during candidate ranking.
	CountActiveOrders(ctx context.Context, id kernel.UUID) (int, error)
}
