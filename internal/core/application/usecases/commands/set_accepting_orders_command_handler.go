package commands

import (
	"context"
)

// SetAcceptingOrdersCommandHandler handles opening and closing a seller's
// store for order assignment. The write compares-and-swaps on the accepting
// version the seller was loaded with, so a racing flip loses cleanly with a
// conflict instead of silently overwriting.
type SetAcceptingOrdersCommandHandler struct {
	uowFactory SellerUoWFactory
}

// NewSetAcceptingOrdersCommandHandler creates a handler for accepting-flag changes.
func NewSetAcceptingOrdersCommandHandler(uowFactory SellerUoWFactory) SetAcceptingOrdersCommandHandler {
	return SetAcceptingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accepting-flag command for the actor's own store.
func (h *SetAcceptingOrdersCommandHandler) Handle(ctx context.Context, cmd SetAcceptingOrdersCommand) error {
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
	aggregate, err := sellerRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = aggregate.SetAcceptingOrders(cmd.Accepting()); err != nil {
		return err
	}

	if err = sellerRepo.UpdateAccepting(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
