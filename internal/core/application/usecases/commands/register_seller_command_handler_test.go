package commands_test

import (
	"testing"

	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterSellerCommand(t *testing.T) commands.RegisterSellerCommand {
	t.Helper()

	location, err := kernel.NewGeoPoint(77.2090, 28.6139)
	require.NoError(t, err)

	cmd, err := commands.NewRegisterSellerCommand(
		"Ravi Kumar", "Kumar Medicos",
		"ravi@kumarmedicos.in", "9876543210", "07ABCDE1234F1Z5",
		"DL-1-20B-12345", "DL-1-21B-12345",
		"s3cret", location, "14 Chandni Chowk, Delhi")
	require.NoError(t, err)
	return cmd
}

func TestRegisterSellerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterSellerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	repo := new(MockSellerRepository)
	uow := new(MockSellerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(s *seller.Seller) bool {
			return s.IsAcceptingOrders() &&
				s.VerificationStatus() == seller.VerificationPending &&
				s.PasswordHash() == "$2a$10$hashed"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterSellerCommandHandler(factory, hasher)
	sellerID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, sellerID.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterSellerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterSellerCommand{} // not constructed properly

	factory := new(MockSellerUoWFactory)
	hasher := new(MockPasswordHasher)
	h := commands.NewRegisterSellerCommandHandler(factory, hasher)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterSellerCommandHandler_Handle_DuplicateTaxID(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterSellerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	repo := new(MockSellerRepository)
	uow := new(MockSellerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*seller.Seller")).
			Return(errs.NewDuplicateIdentityError("taxId")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterSellerCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestNewRegisterSellerCommand_InvalidTaxIDRejectedByAggregate(t *testing.T) {
	// The command only requires presence; the GST format is checked when the
	// aggregate is constructed in the handler.
	ctx := t.Context()
	location, err := kernel.NewGeoPoint(77.2090, 28.6139)
	require.NoError(t, err)

	cmd, err := commands.NewRegisterSellerCommand(
		"Ravi Kumar", "Kumar Medicos",
		"ravi@kumarmedicos.in", "9876543210", "not-a-gst",
		"DL-1-20B-12345", "DL-1-21B-12345",
		"s3cret", location, "14 Chandni Chowk, Delhi")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	factory := new(MockSellerUoWFactory)
	h := commands.NewRegisterSellerCommandHandler(factory, hasher)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
