// Package kernel provides core domain primitives for the field-service
// dispatch system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates with haversine distance
//
// These primitives are immutable and thread-safe, and enforce proper
// construction via the constructor guard pattern.
package kernel
