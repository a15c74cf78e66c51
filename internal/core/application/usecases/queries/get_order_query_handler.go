package queries

import (
	"context"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Access is restricted to the order's owning buyer and assigned seller. An
// outsider gets a forbidden error even for orders that exist, so the read
// model does not leak which identifiers are taken.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns a not-found error when the order does not exist and a forbidden
// error when the actor is neither the buyer nor the assigned seller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
		query.OrderID().Bytes(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	response, err := scanOrder(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if !h.isAccessible(query.Actor(), response) {
		return OrderResponse{}, errs.NewForbiddenErrorWithCause(
			fmt.Errorf("actor %s is neither the buyer nor the assigned seller of order %s",
				query.Actor().ID(), response.ID))
	}

	responses := []OrderResponse{response}
	if err = loadItems(ctx, h.db, responses); err != nil {
		return OrderResponse{}, err
	}

	return responses[0], nil
}

func (h GetOrderQueryHandler) isAccessible(actor auth.Actor, response OrderResponse) bool {
	switch actor.Role() {
	case auth.RoleBuyer:
		return actor.ID().IsEqual(response.BuyerID)
	case auth.RoleSeller:
		return actor.ID().IsEqual(response.SellerID)
	default:
		return false
	}
}
