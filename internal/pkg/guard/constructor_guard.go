// Package guard provides ConstructorGuard, a marker embedded in value objects and
// entities to tell constructor-built instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object went through its constructor.
// The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrCityIsNotConstructed = errors.New("City must be created via NewCity")
//
//	type City struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c City) Validate() error {
//	    return c.guard.Validate(ErrCityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
