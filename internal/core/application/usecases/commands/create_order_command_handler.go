package commands

import (
	"context"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order placement: it finds the seller
// within the assignment radius and persists the new order bound to it, all
// inside one transaction.
//
// The candidate read and the order insert share the transaction so the
// chosen seller reflects a consistent view; assignment itself is read-only
// with respect to seller state. When no seller matches, nothing is
// persisted and the caller gets services.ErrNoSellerAvailable.
type CreateOrderCommandHandler struct {
	uowFactory    SellerOrderUoWFactory
	matcher       services.SellerMatcher
	assignRadiusM float64
}

// NewCreateOrderCommandHandler creates a handler for order placement.
//
// Parameters:
//   - uowFactory: transaction factory spanning seller reads and order writes
//   - matcher: the domain service choosing the seller
//   - assignRadiusM: the assignment radius in meters
func NewCreateOrderCommandHandler(
	uowFactory SellerOrderUoWFactory,
	matcher services.SellerMatcher,
	assignRadiusM float64,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		matcher:       matcher,
		assignRadiusM: assignRadiusM,
	}
}

// Handle processes the order placement command and returns the new order's ID.
// The seller binding is made exactly once here; the order is inserted
// already bound and in pending status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.SellerRepository().GetAllAssignableWithin(ctx, cmd.Origin(), h.assignRadiusM)
	if err != nil {
		return kernel.UUID{}, err
	}

	chosen, err := h.matcher.Match(cmd.Origin(), candidates, h.assignRadiusM)
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		chosen.ID(),
		cmd.Items(),
		cmd.TotalAmount(),
		cmd.Origin(),
		cmd.Address(),
		cmd.PrescriptionImage())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
