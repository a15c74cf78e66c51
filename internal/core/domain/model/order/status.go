package order

import (
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions (and who may perform them):
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
//	Pending   -> Confirmed  assigned seller
//	Pending   -> Cancelled  assigned seller or owning buyer
//	Confirmed -> Shipped    assigned seller
//	Confirmed -> Cancelled  assigned seller
//	Shipped   -> Delivered  assigned seller
//
// Delivered and Cancelled are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation, once the order
	// is bound to a seller and awaits the seller's confirmation.
	Pending

	// Confirmed indicates the assigned seller has accepted the order.
	Confirmed

	// Shipped indicates the assigned seller has dispatched the order.
	Shipped

	// Delivered indicates the order reached the buyer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// transitionTable maps every legal edge of the lifecycle to the roles allowed
// to perform it. An edge absent from this table is an invalid transition for
// everyone; an edge present here is forbidden for roles not listed.
func transitionTable() map[Status]map[Status][]auth.Role {
	return map[Status]map[Status][]auth.Role{
		Pending: {
			Confirmed: {auth.RoleSeller},
			Cancelled: {auth.RoleSeller, auth.RoleBuyer},
		},
		Confirmed: {
			Shipped:   {auth.RoleSeller},
			Cancelled: {auth.RoleSeller},
		},
		Shipped: {
			Delivered: {auth.RoleSeller},
		},
	}
}

// StatusFromString parses the wire representation of a status.
// The enumeration is closed: unknown strings fail with a typed invalid-value
// error rather than producing a dynamic status.
//
// Example:
//
//	status, err := order.StatusFromString("confirmed")
//	if err != nil {
//	    // "confirmed" would have parsed; a typo like "comfirmed" ends up here
//	}
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "pending", "confirmed", "shipped", "delivered", or "cancelled" for
// valid statuses and "unknown" for invalid values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a transition from the current status to target on
// behalf of the given role and returns the resulting status.
//
// Validation order matters for the error a caller sees:
//  1. target must be a valid status (typed invalid-value error otherwise)
//  2. the edge (s -> target) must exist in the lifecycle table for some role
//     (invalid-transition error otherwise)
//  3. the role must be allowed on that edge (forbidden error otherwise)
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Confirmed, auth.RoleSeller)
//	// next == order.Confirmed, err == nil
//
//	_, err = order.Pending.TransitionTo(order.Confirmed, auth.RoleBuyer)
//	// err unwraps to errs.ErrForbidden: only the seller confirms
func (s Status) TransitionTo(target Status, role auth.Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	edges, ok := transitionTable()[s]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	roles, ok := edges[target]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	for _, allowed := range roles {
		if role == allowed {
			return target, nil
		}
	}

	return Unknown, errs.NewForbiddenErrorWithCause(
		fmt.Errorf("role %s may not move an order from %s to %s", role, s, target))
}
