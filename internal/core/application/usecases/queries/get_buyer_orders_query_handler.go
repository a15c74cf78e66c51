package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler lists a buyer's orders, newest first.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order listings.
// Requires a GORM database connection for query execution.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the buyer's orders with their line
// items, newest first. A buyer with no orders gets an empty slice.
func (h GetBuyerOrdersQueryHandler) Handle(ctx context.Context, query GetBuyerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = ? ORDER BY created_at DESC`,
		query.Actor().ID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = loadItems(ctx, h.db, responses); err != nil {
		return nil, err
	}

	return responses, nil
}
