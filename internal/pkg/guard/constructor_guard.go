// Package guard provides the constructor-guard pattern used by commands,
// queries, and value objects to ensure they are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor or as a zero value. Embedding a guard in a command or value
// object lets Validate reject instances that bypassed construction-time
// validation.
//
// Example:
//
//	var ErrRequestBypassCommandIsNotConstructed = errors.New(
//	    "RequestBypassCommand must be created via NewRequestBypassCommand constructor",
//	)
//
//	type RequestBypassCommand struct {
//	    orderID kernel.UUID
//	    reason  string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c RequestBypassCommand) Validate() error {
//	    return c.guard.Validate(ErrRequestBypassCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For zero-value objects it returns validationError, or
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
