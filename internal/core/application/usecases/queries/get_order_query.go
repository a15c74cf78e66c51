// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of its owning buyer or
// assigned seller.
//
// Example:
//
//	query, err := NewGetOrderQuery(actor, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(actor auth.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(query.setActor(actor), query.setOrderID(orderID)); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the buyer or seller requesting the order.
func (q GetOrderQuery) Actor() auth.Actor {
	return q.actor
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one order line in the read model.
type OrderItemResponse struct {
	ProductID    string
	Name         string
	Manufacturer string
	UnitPrice    float64
	Quantity     int
}

// OrderResponse represents an order in the read model, including its lines.
type OrderResponse struct {
	ID                kernel.UUID
	BuyerID           kernel.UUID
	SellerID          kernel.UUID
	Items             []OrderItemResponse
	TotalAmount       float64
	Origin            kernel.GeoPoint
	Address           string
	PrescriptionImage string
	Status            string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
