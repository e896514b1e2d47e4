// Package guard provides a small helper that lets domain objects detect
// whether they were created through their constructor, so that zero-value
// instances fail validation instead of silently misbehaving.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the "constructed" state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, or the supplied error
// (falling back to ErrDefaultConstructorGuard) for a zero-value guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
