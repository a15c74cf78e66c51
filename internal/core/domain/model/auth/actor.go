// Package auth defines the authenticated identity model.
//
// An Actor is produced exactly once per request by the access gate and then
// threaded explicitly through every command and query; handlers never
// re-derive identity from headers or token claims mid-flight.
package auth

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

// Role identifies which side of the marketplace an authenticated identity
// belongs to. The enumeration is closed: there are exactly two roles.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer identifies a buyer account.
	RoleBuyer

	// RoleSeller identifies a seller account.
	RoleSeller
)

// ErrActorIsNotConstructed is returned when attempting to use an improperly
// initialized Actor. Actors must be created via the NewActor constructor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// String returns the wire name of the role: "buyer" or "seller".
// Invalid roles render as "unknown".
func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	default:
		return "unknown"
	}
}

// RoleFromString parses a wire role name. Unknown names fail with a typed
// invalid-value error; the enumeration is closed by design.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "buyer":
		return RoleBuyer, nil
	case "seller":
		return RoleSeller, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleSeller {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated identity performing an operation: a role plus
// the account's unique ID. Actor is an immutable value object.
//
// Example:
//
//	actor, err := auth.NewActor(auth.RoleBuyer, buyerID)
//	if err != nil {
//	    // handle validation error
//	}
//	orders, err := handler.Handle(ctx, query, actor)
type Actor struct { //nolint:recvcheck //using for validation
	role Role
	id   kernel.UUID

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with the given role and identity.
// Both the role and the ID must be valid.
func NewActor(role Role, id kernel.UUID) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setRole(role), actor.setID(id)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate checks if the Actor was properly constructed using the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's account identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// IsBuyer reports whether the actor is a buyer.
func (a Actor) IsBuyer() bool {
	return a.role == RoleBuyer
}

// IsSeller reports whether the actor is a seller.
func (a Actor) IsSeller() bool {
	return a.role == RoleSeller
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	a.role = role
	return nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}
