// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order together with its assigned master
// and attached evidence records.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order does not exist
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the read model for a single order with its
// relations populated.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	Title       string
	Description *string
	Customer    *order.Customer
	Location    kernel.GeoPoint
	Status      string
	MasterID    *kernel.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Master is populated when the order has an assigned master.
	Master *OrderMasterResponse

	// Evidence lists the attached completion proof records, oldest first.
	Evidence []OrderEvidenceResponse
}

// OrderMasterResponse is the read model for the master assigned to an order.
type OrderMasterResponse struct {
	ID        kernel.UUID
	Name      string
	Rating    float64
	Available bool
	Location  kernel.GeoPoint
}

// OrderEvidenceResponse is the read model for an attached evidence record.
// Location and CapturedAt are pointers because stored records may lack them.
type OrderEvidenceResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	MediaType  string
	URL        string
	Location   *kernel.GeoPoint
	CapturedAt *time.Time
	Meta       map[string]any
}
