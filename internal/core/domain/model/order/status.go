package order

import (
	"fmt"

	"fieldservice/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct dispatch workflow.
//
// State transitions:
//
//	New ──> Assigned ──> InProgress ──┐
//	 │          │                     ├──> Completed
//	 │          └─────────────────────┘
//	 └──> Rejected
//
// Completed is a terminal state. Rejected can be reached from any
// non-terminal state when an order is cancelled before completion.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a master.
	New

	// Assigned indicates the order has been assigned to a master
	// who has not started the work yet.
	Assigned

	// InProgress indicates the assigned master is working on the order.
	InProgress

	// Completed indicates the order has been finished and the
	// completion evidence accepted. This is a final state.
	Completed

	// Rejected indicates the order was cancelled before completion.
	Rejected
)

// getStatusStrings returns a map of Status values to their string
// representations as stored in the database and exposed over the API.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "new",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing orders from persistence or external input.
//
// Returns:
//   - the parsed Status if the string names a valid status
//   - error if the string does not name a valid status
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Assigned, InProgress, Completed, Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("new", "assigned",
// "in_progress", "completed" or "rejected"). Invalid values render
// as "unknown".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether an order in this status occupies a slot of
// its master's workload. Assigned and InProgress orders count towards
// the master's current load.
func (s Status) IsActive() bool {
	return s == Assigned || s == InProgress
}

// ValidateAssign checks if the status allows assignment without
// performing the transition.
//
// Only New orders can be assigned. An order that already has a master
// keeps it: reassignment is a conflict, not a transition.
//
// Returns:
//   - nil if assignment is allowed from the current status
//   - error with details if assignment is not allowed
func (s Status) ValidateAssign() error {
	if s != New {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveMaster validates the consistency between order status
// and master assignment.
//
// Business rules:
//   - New and Rejected orders must not have a master assigned
//   - Assigned and InProgress orders must have a master assigned
//   - Completed orders may or may not carry a master reference
//
// Parameters:
//   - master: whether the order has a master assigned
//
// Returns:
//   - error: validation error if status and master assignment are inconsistent
func (s Status) ValidateCanHaveMaster(master bool) error {
	if master && (s == New || s == Rejected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a master", s.String()),
		)
	}

	if !master && (s == Assigned || s == InProgress) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no master", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - New -> Assigned
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from the current status
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from the current status
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Any non-terminal status can complete; completing an already
// completed order is the only invalid transition. Completed is a
// final state with no further transitions possible.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the status is already Completed
func (s Status) Complete() (Status, error) {
	if s == Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - New -> Rejected
//   - Assigned -> Rejected
//   - InProgress -> Rejected
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error) if the order is already Completed or Rejected
func (s Status) Reject() (Status, error) {
	if s == Completed || s == Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}
