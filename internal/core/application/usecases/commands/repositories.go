// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"medmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BuyerRepoFactory provides access to buyer repository within a transaction.
	BuyerRepoFactory interface {
		BuyerRepository() ports.BuyerRepository
	}

	// SellerRepoFactory provides access to seller repository within a transaction.
	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BuyerUoW manages transactions for buyer-only operations.
	BuyerUoW interface {
		TxManager
		BuyerRepoFactory
	}

	// BuyerUoWFactory creates new buyer unit of work instances.
	BuyerUoWFactory interface {
		Create() BuyerUoW
	}

	// SellerUoW manages transactions for seller-only operations.
	SellerUoW interface {
		TxManager
		SellerRepoFactory
	}

	// SellerUoWFactory creates new seller unit of work instances.
	SellerUoWFactory interface {
		Create() SellerUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SellerOrderUoW manages transactions spanning seller reads and order
	// writes. Used by order creation, where the seller binding and the new
	// order must come from one consistent view.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sellerRepo := uow.SellerRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SellerOrderUoW interface {
		TxManager
		SellerRepoFactory
		OrderRepoFactory
	}

	// SellerOrderUoWFactory creates new unit of work instances for
	// cross-aggregate order creation.
	SellerOrderUoWFactory interface {
		Create() SellerOrderUoW
	}
)
