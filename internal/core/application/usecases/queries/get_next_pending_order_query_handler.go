package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNextPendingOrderQueryHandler finds the oldest order in the "new" status.
type GetNextPendingOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetNextPendingOrderQueryHandler creates a handler for pending-order lookups.
func NewGetNextPendingOrderQueryHandler(db *gorm.DB) GetNextPendingOrderQueryHandler {
	return GetNextPendingOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without an error when no order is
// waiting for assignment; an empty queue is a normal outcome, not a failure.
func (h GetNextPendingOrderQueryHandler) Handle(
	ctx context.Context,
	query GetNextPendingOrderQuery,
) (*GetNextPendingOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE status = 'new'
		ORDER BY created_at
		LIMIT 1
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var id uuid.UUID
	if err = rows.Scan(&id); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return &GetNextPendingOrderQueryResponse{OrderID: orderID}, nil
}
