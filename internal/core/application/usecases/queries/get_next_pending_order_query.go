package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetNextPendingOrderQueryIsNotConstructed = errors.New(
	"GetNextPendingOrderQuery must be created via NewGetNextPendingOrderQuery constructor",
)

// GetNextPendingOrderQuery finds the oldest order still waiting for master
// assignment. Used by the background assignment job to pick up work.
type GetNextPendingOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNextPendingOrderQuery creates a query for the oldest pending order.
func NewGetNextPendingOrderQuery() GetNextPendingOrderQuery {
	return GetNextPendingOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNextPendingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetNextPendingOrderQueryIsNotConstructed)
}

// GetNextPendingOrderQueryResponse identifies the oldest pending order.
type GetNextPendingOrderQueryResponse struct {
	OrderID kernel.UUID
}
