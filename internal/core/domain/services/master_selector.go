package services

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
)

// ErrMasterNotFound is returned when no suitable master is available for
// assignment. This occurs when the candidate list is empty or every candidate
// is unavailable.
var ErrMasterNotFound = errors.New("no available master found")

// Candidate pairs a master with the derived workload used during ranking.
// ActiveOrders counts the candidate's orders in the assigned or in_progress
// statuses at the time the candidate list was built.
type Candidate struct {
	Master       *master.Master
	ActiveOrders int
}

// MasterSelector is a domain service responsible for picking the best master
// for a service order location.
//
// Ranking rules, applied in order:
//  1. Smallest great-circle distance to the order location wins
//  2. On equal distance, higher rating wins
//  3. On equal distance and rating, fewer active orders wins
//  4. Remaining ties keep the earlier candidate in the list
//
// Unavailable masters are never selected regardless of distance.
//
// Example usage:
//
//	selector := services.NewMasterSelector()
//	best, err := selector.SelectBest(order.Location(), candidates)
//	if errors.Is(err, services.ErrMasterNotFound) {
//	    // nobody to assign right now
//	}
type MasterSelector struct{}

// NewMasterSelector creates a new MasterSelector instance.
func NewMasterSelector() MasterSelector {
	return MasterSelector{}
}

// SelectBest finds the best available master for the given order location.
//
// Parameters:
//   - location: the order's service location (must be constructed)
//   - candidates: masters to consider, each with its derived workload
//
// Returns:
//   - the winning candidate's master
//   - ErrMasterNotFound if no available candidate exists
//   - a validation error if the location or any candidate is invalid
func (s MasterSelector) SelectBest(
	location kernel.GeoPoint,
	candidates []Candidate,
) (*master.Master, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var (
		best         *master.Master
		bestDistance float64
		bestRating   float64
		bestLoad     int
	)

	for _, candidate := range candidates {
		if err := candidate.Master.Validate(); err != nil {
			return nil, err
		}

		if !candidate.Master.IsAvailable() {
			continue
		}

		distance, err := candidate.Master.Location().DistanceTo(location)
		if err != nil {
			return nil, err
		}

		if best == nil || s.beats(
			distance, candidate.Master.Rating(), candidate.ActiveOrders,
			bestDistance, bestRating, bestLoad,
		) {
			best = candidate.Master
			bestDistance = distance
			bestRating = candidate.Master.Rating()
			bestLoad = candidate.ActiveOrders
		}
	}

	if best == nil {
		return nil, ErrMasterNotFound
	}

	return best, nil
}

// beats reports whether a challenger strictly outranks the current best.
// Ties on all three criteria keep the current best.
func (s MasterSelector) beats(
	distance, rating float64, load int,
	bestDistance, bestRating float64, bestLoad int,
) bool {
	if distance != bestDistance {
		return distance < bestDistance
	}
	if rating != bestRating {
		return rating > bestRating
	}
	return load < bestLoad
}
