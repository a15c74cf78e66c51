package queries

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves the acting buyer's own orders, newest first.
type GetBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the buyer's order history.
// The actor must be a buyer; the listing is always scoped to the actor's
// own orders.
func NewGetBuyerOrdersQuery(actor auth.Actor) (GetBuyerOrdersQuery, error) {
	query := GetBuyerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setActor(actor); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// Actor returns the buyer whose orders are listed.
func (q GetBuyerOrdersQuery) Actor() auth.Actor {
	return q.actor
}

func (q *GetBuyerOrdersQuery) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsBuyer() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("only buyers can list buyer orders, got role %s", actor.Role()))
	}

	q.actor = actor
	return nil
}
