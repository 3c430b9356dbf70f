package services

import (
	"fieldservice/internal/core/domain/model/order"
)

// CompletionPolicy is a domain service that decides whether an order's
// attached evidence satisfies the proof-of-completion requirement.
//
// An order may only be completed when at least one of its evidence records
// carries both a GPS position and a capture timestamp. An order with zero
// evidence records never qualifies.
type CompletionPolicy struct{}

// NewCompletionPolicy creates a new CompletionPolicy instance.
func NewCompletionPolicy() CompletionPolicy {
	return CompletionPolicy{}
}

// HasValidEvidence reports whether at least one record in the given evidence
// collection satisfies the completion requirement. Records missing a position
// or timestamp are skipped rather than treated as errors.
func (p CompletionPolicy) HasValidEvidence(evidence []*order.Evidence) bool {
	for _, e := range evidence {
		if e == nil || e.Validate() != nil {
			continue
		}
		if e.IsValid() {
			return true
		}
	}
	return false
}
