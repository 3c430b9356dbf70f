package master

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

const (
	// RatingMin is the lowest allowed master rating.
	RatingMin = 0.0
	// RatingMax is the highest allowed master rating.
	RatingMax = 5.0
)

// Domain errors for master operations.
var (
	// ErrNameIsRequired is returned when attempting to create a master without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMasterIsNotConstructed is returned when using an improperly initialized Master.
	ErrMasterIsNotConstructed = errors.New("Master must be created via NewMaster constructor")
)

// Master represents a field-service worker who can be assigned to orders.
// It is an aggregate root that manages worker identity, rating, availability,
// and current geographic position.
//
// Business rules:
//   - Master must have a valid UUID and a non-empty name
//   - Rating must be within [RatingMin, RatingMax]
//   - Only available masters can be considered for assignment
//
// The master's workload (count of active orders) is not part of this
// aggregate; it is derived from the order store when ranking candidates.
type Master struct {
	// id uniquely identifies the master
	id kernel.UUID
	// name is the human-readable name of the master
	name string
	// rating is the service quality score within [RatingMin, RatingMax]
	rating float64
	// available reports whether the master currently accepts new orders
	available bool
	// location is the master's current geographic position
	location kernel.GeoPoint
	// guard ensures the master was properly constructed
	guard guard.ConstructorGuard
}

// NewMaster creates a new Master with the specified parameters.
// This is the only way to create a valid Master instance.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - rating: service quality score (must be within [RatingMin, RatingMax])
//   - available: whether the master currently accepts new orders
//   - location: current geographic position (must be constructed)
//
// Returns the master, or an aggregated validation error if any parameter
// is invalid.
func NewMaster(
	id kernel.UUID,
	name string,
	rating float64,
	available bool,
	location kernel.GeoPoint,
) (*Master, error) {
	m := &Master{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setRating(rating),
		m.setLocation(location),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks if the Master was properly constructed via NewMaster.
// The zero value of Master is invalid and fails this validation.
func (m *Master) Validate() error {
	if m == nil {
		return ErrMasterIsNotConstructed
	}
	return m.guard.Validate(ErrMasterIsNotConstructed)
}

// IsEqual compares two masters for equality by their unique identifiers.
func (m *Master) IsEqual(other *Master) bool {
	if other == nil {
		return false
	}
	return m.id.IsEqual(other.id)
}

// ID returns the master's unique identifier.
func (m *Master) ID() kernel.UUID {
	return m.id
}

// Name returns the master's human-readable name.
func (m *Master) Name() string {
	return m.name
}

// Rating returns the master's service quality score.
func (m *Master) Rating() float64 {
	return m.rating
}

// IsAvailable reports whether the master currently accepts new orders.
func (m *Master) IsAvailable() bool {
	return m.available
}

// Location returns the master's current geographic position.
func (m *Master) Location() kernel.GeoPoint {
	return m.location
}

// SetAvailability updates whether the master accepts new orders.
func (m *Master) SetAvailability(available bool) {
	m.available = available
}

// MoveTo updates the master's current geographic position.
// The new location must be properly constructed.
func (m *Master) MoveTo(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	m.location = location
	return nil
}

// setID validates and sets the master's unique identifier.
func (m *Master) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setName validates and sets the master's name.
func (m *Master) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

// setRating validates and sets the master's rating.
// The rating must be within [RatingMin, RatingMax].
func (m *Master) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	m.rating = rating
	return nil
}

// setLocation validates and sets the master's position.
func (m *Master) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	m.location = location
	return nil
}
