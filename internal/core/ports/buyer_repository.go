package ports

import (
	"context"

	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"
)

// BuyerRepository defines the persistence contract for buyer aggregates.
type BuyerRepository interface {
	// Add persists a new buyer aggregate to storage.
	// Fails with a duplicate-identity error when the email is already registered.
	Add(ctx context.Context, aggregate *buyer.Buyer) error

	// Get retrieves a buyer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error)

	// GetByEmail retrieves a buyer aggregate by its unique login email.
	GetByEmail(ctx context.Context, email string) (*buyer.Buyer, error)
}
