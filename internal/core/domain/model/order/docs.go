// Package order provides domain entities and business logic for order management
// in the dispatch system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, weight, region,
//     delivery windows, and its place in the shipment lifecycle
//
// Key business rules:
//   - Orders must have a valid externally assigned identifier, a positive weight,
//     a region, and at least one delivery window
//   - An order's lifecycle is available -> assigned to a shipment -> completed
//   - A completed order always references the shipment that delivered it
//   - Eviction from a shipment returns the order to the available pool and is
//     only possible before completion
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
