// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is invalid.
// Only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	var ErrReloadOrdersCommandIsNotConstructed = errors.New("ReloadOrdersCommand must be created via NewReloadOrdersCommand")
//
//	type ReloadOrdersCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewReloadOrdersCommand() ReloadOrdersCommand {
//	    return ReloadOrdersCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c ReloadOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrReloadOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
