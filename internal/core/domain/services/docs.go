// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - SellerMatcher: A domain service for choosing the seller an order is bound to
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
