package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// It prevents direct struct initialization and enforces validation rules.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrClaimTicketIsNotConstructed = errors.New("ClaimTicket must be created via NewClaimTicket")
//
//	type ClaimTicket struct {
//	    driverID string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewClaimTicket(driverID string) (ClaimTicket, error) {
//	    if driverID == "" {
//	        return ClaimTicket{}, errors.New("driver id is required")
//	    }
//	    return ClaimTicket{
//	        driverID: driverID,
//	        guard:    guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c ClaimTicket) Validate() error {
//	    return c.guard.Validate(ErrClaimTicketIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a properly constructed guard.
// Embed the returned value in an object inside its constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
