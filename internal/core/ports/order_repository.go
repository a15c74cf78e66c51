package ports

import (
	"context"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/model/seller"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. A single insert writes
	// the seller binding and the initial status together, so an order is
	// never visible unbound.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status transition with a compare-and-swap on
	// the version the aggregate was loaded with. Of two racing transitions
	// exactly one wins; the loser gets a conflict error.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByBuyer retrieves the buyer's orders, newest first.
	GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// GetAllBySellerWithin retrieves the seller's orders whose origin lies
	// within radiusM meters of the center, newest first.
	GetAllBySellerWithin(ctx context.Context, sellerID kernel.UUID, center kernel.GeoPoint, radiusM float64) ([]*order.Order, error)

	// GetMetricsBySeller computes the seller's order-history counters from
	// stored orders. Used by the metrics job.
	GetMetricsBySeller(ctx context.Context, sellerID kernel.UUID) (seller.Metrics, error)
}
