// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates, commands and queries to detect zero values that bypassed their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning struct was built by its constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    total decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuote(total decimal.Decimal) Quote {
//	    return Quote{total: total, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
