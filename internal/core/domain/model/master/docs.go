// Package master provides the domain entity for field-service workers.
//
// A Master is a worker who can be dispatched to service orders. The aggregate
// manages worker identity, rating, availability, and geographic position.
// Candidate ranking during assignment lives in the services package; the
// worker's current order load is derived from the order store.
package master
