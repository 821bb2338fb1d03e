// Package guard marks values that were built through their constructor so that
// zero values of commands, queries and aggregates can be rejected early.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a field in types that must only be created
// through a constructor. Its zero value reports "not constructed".
//
// Example:
//
//	var ErrRoundNotConstructed = errors.New("Round must be created via NewRound")
//
//	type Round struct {
//	    date  time.Time
//	    guard guard.ConstructorGuard
//	}
//
//	func (r Round) Validate() error {
//	    return r.guard.Validate(ErrRoundNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
