// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates.
//
// The package includes:
//   - MasterSelector: ranks available masters by distance, rating, and workload
//     to pick the best candidate for an order
//   - CompletionPolicy: decides whether an order's evidence satisfies the
//     proof-of-completion requirement
//
// Domain services are pure: they operate on aggregates passed in by the
// application layer and never touch persistence themselves.
package services
