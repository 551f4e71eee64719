// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries. A guarded struct can tell whether it was
// built through its designated constructor or left as a zero value, which is
// how aggregates and commands enforce that validation actually ran.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it via NewConstructorGuard inside the constructor; the zero
// value fails validation, so bypassing the constructor is detectable.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it only
// from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
