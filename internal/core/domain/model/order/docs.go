// Package order provides domain entities and business logic for service order
// management in the field-service dispatch system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, properties, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - Evidence: completion proof records (photo/video with GPS and timestamp)
//
// Key business rules:
//   - Orders must have a valid unique identifier, non-empty title, and location
//   - Order status follows a defined workflow: new -> assigned -> in_progress -> completed
//   - A master can only be assigned once; reassignment is a conflict
//   - Completion requires at least one evidence record with GPS and timestamp,
//     enforced by the application layer via the completion policy
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
