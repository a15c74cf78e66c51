package commands_test

import (
	"errors"
	"testing"

	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterBuyerCommand(t *testing.T) commands.RegisterBuyerCommand {
	t.Helper()

	cmd, err := commands.NewRegisterBuyerCommand(
		"Asha Singh", "asha@example.in", "9123456780",
		"s3cret", "5 Park Street, Kolkata", "700016")
	require.NoError(t, err)
	return cmd
}

func TestRegisterBuyerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterBuyerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	repo := new(MockBuyerRepository)
	uow := new(MockBuyerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BuyerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*buyer.Buyer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBuyerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterBuyerCommandHandler(factory, hasher)
	buyerID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, buyerID.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterBuyerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterBuyerCommand{} // not constructed properly

	factory := new(MockBuyerUoWFactory)
	hasher := new(MockPasswordHasher)
	h := commands.NewRegisterBuyerCommandHandler(factory, hasher)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterBuyerCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterBuyerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("", errors.New("hash error")).Once()

	factory := new(MockBuyerUoWFactory)
	h := commands.NewRegisterBuyerCommandHandler(factory, hasher)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterBuyerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterBuyerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	repo := new(MockBuyerRepository)
	uow := new(MockBuyerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BuyerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*buyer.Buyer")).
			Return(errs.NewDuplicateIdentityError("email")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBuyerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterBuyerCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
	uow.AssertExpectations(t)
}

func TestRegisterBuyerCommandHandler_Handle_PersistsHashedPassword(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterBuyerCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashed", nil).Once()

	repo := new(MockBuyerRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(b *buyer.Buyer) bool {
		return b.PasswordHash() == "$2a$10$hashed" && b.Email() == "asha@example.in"
	})).Return(nil).Once()

	uow := new(MockBuyerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BuyerRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBuyerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterBuyerCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
