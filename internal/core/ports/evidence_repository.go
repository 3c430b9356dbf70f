package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
)

// EvidenceRepository defines the persistence contract for completion
// evidence records. Evidence is immutable once attached, so the contract
// has no update operation.
type EvidenceRepository interface {
	// Add persists a new evidence record.
	Add(ctx context.Context, evidence *order.Evidence) error

	// GetAllForOrder retrieves every evidence record attached to the given
	// order, oldest first. Returns an empty slice for an order without
	// evidence.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Evidence, error)
}
