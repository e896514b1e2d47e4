// Package kernel provides core domain primitives and utilities for the dispatch system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - TimeOfDay: A value object for minute-precision wall-clock times ("HH:MM")
//   - TimeInterval: A value object for same-day time windows with half-open overlap semantics,
//     used for courier work shifts and order delivery windows
//   - Weight: A value object for exact decimal weights in kilograms
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
