// Package guard provides the constructor guard pattern used by commands,
// queries and value objects to reject zero-value instances that bypassed
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was created through
// its constructor function or as a zero value. Embed one and call Validate
// before acting on the object.
//
// Example:
//
//	type ClaimRoleCommand struct {
//	    role  account.Role
//	    guard guard.ConstructorGuard
//	}
//
//	func NewClaimRoleCommand(role account.Role) ClaimRoleCommand {
//	    return ClaimRoleCommand{role: role, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c ClaimRoleCommand) Validate() error {
//	    return c.guard.Validate(ErrClaimRoleCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the embedding object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
