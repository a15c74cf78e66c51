package commands

import (
	"context"
)

// RefreshSellerMetricsCommandHandler recomputes the order-history snapshot
// of every active seller. The counters are derived from the orders table,
// so a missed run loses nothing: the next one recomputes from scratch.
type RefreshSellerMetricsCommandHandler struct {
	uowFactory SellerOrderUoWFactory
}

// NewRefreshSellerMetricsCommandHandler creates a handler for metrics refreshes.
func NewRefreshSellerMetricsCommandHandler(uowFactory SellerOrderUoWFactory) RefreshSellerMetricsCommandHandler {
	return RefreshSellerMetricsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes and persists metrics for all active sellers in a single
// transaction.
func (h *RefreshSellerMetricsCommandHandler) Handle(ctx context.Context, cmd RefreshSellerMetricsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sellerRepo := uow.SellerRepository()
	orderRepo := uow.OrderRepository()

	sellers, err := sellerRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range sellers {
		metrics, err := orderRepo.GetMetricsBySeller(ctx, aggregate.ID())
		if err != nil {
			return err
		}

		aggregate.UpdateMetrics(metrics)

		if err = sellerRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
