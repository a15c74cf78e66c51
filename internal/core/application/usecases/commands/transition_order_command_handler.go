package commands

import (
	"context"
)

// TransitionOrderCommandHandler handles status transitions. The aggregate
// enforces ownership and the lifecycle table; the repository write
// compares-and-swaps on the version the order was loaded with, so of two
// racing transitions exactly one wins and the loser gets a conflict.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Repeating a transition the order has already taken fails with an invalid
// transition for the current state; retries are not silently absorbed.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
