package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error. Validation of an unconstructed object
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a value object or entity was created through
// its designated constructor function rather than as a zero value.
//
// Embed a ConstructorGuard in a struct with private fields and set it in the
// constructor. Any zero-value instance will then fail Validate, which keeps
// invariants enforced even when a struct leaks out without going through its
// factory function.
//
// Example:
//
//	var ErrPriorityIsNotConstructed = errors.New("Priority must be created via NewPriority")
//
//	type Priority struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPriority(name string) (Priority, error) {
//	    if name == "" {
//	        return Priority{}, errors.New("name is required")
//	    }
//	    return Priority{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Priority) Validate() error {
//	    return p.guard.Validate(ErrPriorityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of the guarded type.
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
