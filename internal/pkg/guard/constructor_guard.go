// Package guard provides a defensive construction pattern for commands, queries,
// and value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypass their constructor fail validation
// instead of carrying unvalidated state through the application.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate when no
// specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether an object was created through its designated
// constructor. The zero value is "not constructed" and fails validation.
//
// Example usage:
//
//	type AcceptOrderCommand struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAcceptOrderCommand(orderID int64) (AcceptOrderCommand, error) {
//	    if orderID <= 0 {
//	        return AcceptOrderCommand{}, errs.NewValueIsInvalidError("orderID")
//	    }
//	    return AcceptOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AcceptOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
