package commands

import (
	"context"

	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/ports"
)

// RegisterBuyerCommandHandler handles the business logic for buyer registration.
// Hashes the password, creates the aggregate, and persists it; email
// uniqueness is enforced by the repository.
type RegisterBuyerCommandHandler struct {
	uowFactory BuyerUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterBuyerCommandHandler creates a handler for buyer registration.
func NewRegisterBuyerCommandHandler(uowFactory BuyerUoWFactory, hasher ports.PasswordHasher) RegisterBuyerCommandHandler {
	return RegisterBuyerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the new buyer's ID.
// A duplicate email surfaces as a duplicate-identity error from the repository.
func (h *RegisterBuyerCommandHandler) Handle(ctx context.Context, cmd RegisterBuyerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := buyer.NewBuyer(
		kernel.NewUUID(),
		cmd.Name(), cmd.Email(), cmd.Mobile(),
		passwordHash, cmd.Address(), cmd.Pincode())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BuyerRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
