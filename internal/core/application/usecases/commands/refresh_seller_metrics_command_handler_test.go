package commands_test

import (
	"errors"
	"testing"
	"time"

	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshSellerMetricsCommand_Validate_Unconstructed(t *testing.T) {
	var cmd commands.RefreshSellerMetricsCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRefreshSellerMetricsCommandIsNotConstructed)
}

func TestRefreshSellerMetricsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshSellerMetricsCommand()

	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	first := newTestSellerAggregate(t, firstID)
	second := newTestSellerAggregate(t, secondID)

	lastActive := time.Now().Add(-time.Hour)
	firstMetrics := seller.Metrics{
		TotalOrders:     5,
		CompletedOrders: 3,
		CancelledOrders: 1,
		LastActiveAt:    &lastActive,
	}
	secondMetrics := seller.Metrics{}

	sellerRepo := new(MockSellerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockSellerOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SellerRepository").Return(sellerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	sellerRepo.On("GetAllActive", mock.Anything).Return([]*seller.Seller{first, second}, nil).Once()
	orderRepo.On("GetMetricsBySeller", mock.Anything, firstID).Return(firstMetrics, nil).Once()
	orderRepo.On("GetMetricsBySeller", mock.Anything, secondID).Return(secondMetrics, nil).Once()
	sellerRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *seller.Seller) bool {
		return s.ID() == firstID && s.Metrics().TotalOrders == 5 && s.Metrics().LastActiveAt != nil
	})).Return(nil).Once()
	sellerRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *seller.Seller) bool {
		return s.ID() == secondID && s.Metrics().TotalOrders == 0
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSellerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshSellerMetricsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	sellerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefreshSellerMetricsCommandHandler_Handle_NoActiveSellers(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshSellerMetricsCommand()

	sellerRepo := new(MockSellerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockSellerOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SellerRepository").Return(sellerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	sellerRepo.On("GetAllActive", mock.Anything).Return([]*seller.Seller{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSellerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshSellerMetricsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	sellerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefreshSellerMetricsCommandHandler_Handle_MetricsQueryFails(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshSellerMetricsCommand()

	sellerID := kernel.NewUUID()
	aggregate := newTestSellerAggregate(t, sellerID)
	queryErr := errors.New("connection reset")

	sellerRepo := new(MockSellerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockSellerOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SellerRepository").Return(sellerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	sellerRepo.On("GetAllActive", mock.Anything).Return([]*seller.Seller{aggregate}, nil).Once()
	orderRepo.On("GetMetricsBySeller", mock.Anything, sellerID).Return(seller.Metrics{}, queryErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSellerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshSellerMetricsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, queryErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
