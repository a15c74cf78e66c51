// Package ports defines repository and gateway interfaces for the marketplace
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller aggregates.
type SellerRepository interface {
	// Add persists a new seller aggregate to storage.
	// Fails with a duplicate-identity error when the email, mobile, or tax ID
	// is already registered.
	Add(ctx context.Context, aggregate *seller.Seller) error

	// Update persists profile, document, metrics, and activity changes to an
	// existing seller. The accepting flag is deliberately NOT written by this
	// method; use UpdateAccepting so the flag keeps its own optimistic token.
	Update(ctx context.Context, aggregate *seller.Seller) error

	// UpdateAccepting persists the accepting flag with a compare-and-swap on
	// the accepting version the aggregate was loaded with. Of two racing
	// writers exactly one wins; the loser gets a conflict error.
	UpdateAccepting(ctx context.Context, aggregate *seller.Seller) error

	// Get retrieves a seller aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error)

	// GetByEmail retrieves a seller aggregate by its unique login email.
	GetByEmail(ctx context.Context, email string) (*seller.Seller, error)

	// GetAllAssignableWithin retrieves the active, accepting sellers whose
	// location lies within radiusM meters of the origin, ordered nearest
	// first. Used by the order assignment flow.
	GetAllAssignableWithin(ctx context.Context, origin kernel.GeoPoint, radiusM float64) ([]*seller.Seller, error)

	// GetAllActive retrieves every active seller. Used by the metrics job.
	GetAllActive(ctx context.Context) ([]*seller.Seller, error)
}
