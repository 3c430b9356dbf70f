package order

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMasterAlreadyAssigned is returned when attempting to assign a master
	// to an order that already has one. Reassignment is not allowed.
	ErrMasterAlreadyAssigned = errors.New("order already has a master assigned")

	// ErrOrderAlreadyCompleted is returned when attempting to complete an order
	// that is already in the Completed status.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")
)

// Customer holds the contact details captured with a service order.
// Both fields are optional free-form strings supplied by the caller.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order represents a service order in the system. It is the aggregate root that
// manages the order lifecycle from creation through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty title
//   - Must have a valid service location
//   - Status transitions follow defined business rules
//   - Exactly one master may ever be assigned; reassignment is a conflict
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// title is a short human-readable summary of the requested work
	title string

	// description is an optional longer description of the work
	description *string

	// customer holds optional customer contact details
	customer *Customer

	// location is where the work has to be performed
	location kernel.GeoPoint

	// status represents the current state in the order lifecycle
	status Status

	// masterID is the assigned master's ID (nil if unassigned)
	masterID *kernel.UUID

	// createdAt and updatedAt track the order's audit timestamps in UTC
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid new order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - title: short summary of the requested work (must be non-empty)
//   - description: optional longer description (may be nil)
//   - customer: optional customer contact details (may be nil)
//   - location: service location with validated construction
//
// The order starts in the New status with no master assigned and both audit
// timestamps set to the current UTC time.
func NewOrder(
	id kernel.UUID,
	title string,
	description *string,
	customer *Customer,
	location kernel.GeoPoint,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTitle(title),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	order.description = description
	order.customer = customer

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any lifecycle status and an optional master reference, but it still
// validates every field and the consistency between status and assignment.
//
// Used by the persistence layer when mapping database rows back to the domain.
func RestoreOrder(
	id kernel.UUID,
	title string,
	description *string,
	customer *Customer,
	location kernel.GeoPoint,
	status Status,
	masterID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTitle(title),
		order.setLocation(location),
		order.setStatus(status),
		order.setMasterID(masterID),
	); err != nil {
		return nil, err
	}

	order.description = description
	order.customer = customer

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Title returns the short summary of the requested work.
func (o *Order) Title() string {
	return o.title
}

// Description returns the optional longer description.
// Returns nil if no description was provided.
func (o *Order) Description() *string {
	return o.description
}

// Customer returns the optional customer contact details.
// Returns nil if no customer details were provided.
func (o *Order) Customer() *Customer {
	return o.customer
}

// Location returns the service location for the order.
func (o *Order) Location() kernel.GeoPoint {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Master returns the assigned master's ID.
// Returns nil if no master is assigned.
func (o *Order) Master() *kernel.UUID {
	return o.masterID
}

// CreatedAt returns the UTC time the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the UTC time of the last state change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns the order to a master and updates the status to Assigned.
//
// This method enforces the following business rules:
//   - The master ID must be valid
//   - The order must not already have a master (no reassignment)
//   - The order must be in the New status
//
// Returns:
//   - nil on successful assignment
//   - ErrMasterAlreadyAssigned if the order already has a master
//   - error if the master ID is invalid or the status transition is not allowed
func (o *Order) Assign(masterID kernel.UUID) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	if o.masterID != nil {
		return ErrMasterAlreadyAssigned
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.masterID = &masterID
	o.touch()
	return nil
}

// Start marks the order as in progress.
//
// The order must be in the Assigned status.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete marks the order as completed.
//
// Completion is allowed from any non-terminal status; the completion
// evidence requirement is enforced by the application layer, not here.
//
// Returns:
//   - nil on successful completion
//   - ErrOrderAlreadyCompleted if the order is already completed
func (o *Order) Complete() error {
	if o.status == Completed {
		return ErrOrderAlreadyCompleted
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Reject cancels the order before completion. The master assignment, if any,
// is released so the master's workload no longer counts this order.
//
// Returns an error if the order is already Completed or Rejected.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.masterID = nil
	o.touch()
	return nil
}

// touch bumps the updatedAt audit timestamp.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTitle validates and sets the order's title.
// The title must be non-empty.
func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

// setLocation validates and sets the order's service location.
// This is a private method used only during construction.
func (o *Order) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setStatus validates and sets the order's status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setMasterID validates the master reference against the order's status and
// sets it during restoration.
func (o *Order) setMasterID(masterID *kernel.UUID) error {
	if err := o.status.ValidateCanHaveMaster(masterID != nil); err != nil {
		return err
	}
	if masterID != nil {
		if err := masterID.Validate(); err != nil {
			return err
		}
	}
	o.masterID = masterID
	return nil
}
