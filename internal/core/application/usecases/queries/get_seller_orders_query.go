package queries

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves the acting seller's assigned orders whose
// origin lies within the listing radius of the seller's current location,
// newest first.
//
// A zero radius means "use the configured default"; the handler substitutes
// its configured listing radius.
type GetSellerOrdersQuery struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	radiusM float64

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for the seller's nearby orders.
// The actor must be a seller. radiusM overrides the configured listing
// radius when positive; pass 0 to use the default.
func NewGetSellerOrdersQuery(actor auth.Actor, radiusM float64) (GetSellerOrdersQuery, error) {
	query := GetSellerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(query.setActor(actor), query.setRadiusM(radiusM)); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// Actor returns the seller whose orders are listed.
func (q GetSellerOrdersQuery) Actor() auth.Actor {
	return q.actor
}

// RadiusM returns the requested listing radius in meters, or 0 for the
// configured default.
func (q GetSellerOrdersQuery) RadiusM() float64 {
	return q.radiusM
}

func (q *GetSellerOrdersQuery) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsSeller() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("only sellers can list seller orders, got role %s", actor.Role()))
	}

	q.actor = actor
	return nil
}

func (q *GetSellerOrdersQuery) setRadiusM(radiusM float64) error {
	if radiusM < 0 {
		return errs.NewValueIsInvalidError("radiusM")
	}
	q.radiusM = radiusM
	return nil
}
