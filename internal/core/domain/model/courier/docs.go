// Package courier provides domain entities and business logic for courier management
// in the dispatch system. It implements the Courier aggregate root with its transport
// type, served regions, and work shifts.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity, regions, and shifts
//   - Type: A value object carrying the transport type code and its bag capacity
//
// Key business rules:
//   - Couriers must have a valid externally assigned identifier, a type, at least
//     one served region, and at least one work shift
//   - Region and shift sets change with replace-all semantics, never partial merges
//   - Earnings coefficients are keyed by type code; unknown codes earn nothing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
