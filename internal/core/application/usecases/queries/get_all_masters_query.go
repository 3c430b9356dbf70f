package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetAllMastersQueryIsNotConstructed = errors.New(
	"GetAllMastersQuery must be created via NewGetAllMastersQuery constructor",
)

// GetAllMastersQuery retrieves every master together with their derived
// current load (count of orders in the assigned or in_progress statuses).
//
// Example:
//
//	query := NewGetAllMastersQuery()
//	handler := NewGetAllMastersQueryHandler(db)
//
//	masters, err := handler.Handle(ctx, query)
//	for _, m := range masters {
//	    fmt.Printf("%s: %d active orders\n", m.Name, m.CurrentLoad)
//	}
type GetAllMastersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMastersQuery creates a query to retrieve all masters.
// This is a parameterless query that fetches the complete master list.
func NewGetAllMastersQuery() GetAllMastersQuery {
	return GetAllMastersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMastersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMastersQueryIsNotConstructed)
}

// MasterQueryResponse represents master information in the read model,
// including the derived workload.
type MasterQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Rating    float64
	Available bool
	Location  kernel.GeoPoint

	// CurrentLoad is the number of the master's orders currently in the
	// assigned or in_progress statuses.
	CurrentLoad int
}
