package commands

import (
	"context"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/core/ports"
)

// RegisterSellerCommandHandler handles the business logic for seller
// registration. The new store starts accepting orders with every document
// pending review; email, mobile, and tax ID uniqueness is enforced by the
// repository.
type RegisterSellerCommandHandler struct {
	uowFactory SellerUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterSellerCommandHandler creates a handler for seller registration.
func NewRegisterSellerCommandHandler(uowFactory SellerUoWFactory, hasher ports.PasswordHasher) RegisterSellerCommandHandler {
	return RegisterSellerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the new seller's ID.
// A duplicate email, mobile, or tax ID surfaces as a duplicate-identity
// error from the repository.
func (h *RegisterSellerCommandHandler) Handle(ctx context.Context, cmd RegisterSellerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := seller.NewSeller(
		kernel.NewUUID(),
		cmd.OwnerName(), cmd.StoreName(),
		cmd.Email(), cmd.Mobile(), cmd.TaxID(),
		cmd.DrugLicense1(), cmd.DrugLicense2(),
		passwordHash,
		cmd.Location(), cmd.Address())
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

	if err = uow.SellerRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
