package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetMasterQueryIsNotConstructed = errors.New(
	"GetMasterQuery must be created via NewGetMasterQuery constructor",
)

// GetMasterQuery retrieves a single master with their current load.
type GetMasterQuery struct { //nolint:recvcheck //using for validation
	masterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMasterQuery creates a query for the given master identifier.
func NewGetMasterQuery(masterID kernel.UUID) (GetMasterQuery, error) {
	query := GetMasterQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setMasterID(masterID); err != nil {
		return GetMasterQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMasterQuery) Validate() error {
	return q.guard.Validate(ErrGetMasterQueryIsNotConstructed)
}

// MasterID returns the identifier of the requested master.
func (q GetMasterQuery) MasterID() kernel.UUID {
	return q.masterID
}

func (q *GetMasterQuery) setMasterID(masterID kernel.UUID) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	q.masterID = masterID
	return nil
}
