package commands_test

import (
	"context"

	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBuyerRepository struct{ mock.Mock }

func (m *MockBuyerRepository) Add(ctx context.Context, b *buyer.Buyer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*buyer.Buyer), args.Error(1)
}
func (m *MockBuyerRepository) GetByEmail(ctx context.Context, email string) (*buyer.Buyer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*buyer.Buyer), args.Error(1)
}

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Add(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSellerRepository) Update(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSellerRepository) UpdateAccepting(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}
func (m *MockSellerRepository) GetByEmail(ctx context.Context, email string) (*seller.Seller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}
func (m *MockSellerRepository) GetAllAssignableWithin(
	ctx context.Context, origin kernel.GeoPoint, radiusM float64,
) ([]*seller.Seller, error) {
	args := m.Called(ctx, origin, radiusM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*seller.Seller), args.Error(1)
}
func (m *MockSellerRepository) GetAllActive(ctx context.Context) ([]*seller.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*seller.Seller), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllBySellerWithin(
	ctx context.Context, sellerID kernel.UUID, center kernel.GeoPoint, radiusM float64,
) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID, center, radiusM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetMetricsBySeller(ctx context.Context, sellerID kernel.UUID) (seller.Metrics, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(seller.Metrics), args.Error(1)
}

type MockBuyerUoW struct{ mock.Mock }

func (m *MockBuyerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBuyerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBuyerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBuyerUoW) BuyerRepository() ports.BuyerRepository {
	args := m.Called()
	return args.Get(0).(ports.BuyerRepository)
}

type MockBuyerUoWFactory struct{ mock.Mock }

func (m *MockBuyerUoWFactory) Create() commands.BuyerUoW {
	args := m.Called()
	return args.Get(0).(commands.BuyerUoW)
}

type MockSellerUoW struct{ mock.Mock }

func (m *MockSellerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerUoW) SellerRepository() ports.SellerRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerRepository)
}

type MockSellerUoWFactory struct{ mock.Mock }

func (m *MockSellerUoWFactory) Create() commands.SellerUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSellerOrderUoW struct{ mock.Mock }

func (m *MockSellerOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSellerOrderUoW) SellerRepository() ports.SellerRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerRepository)
}
func (m *MockSellerOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockSellerOrderUoWFactory struct{ mock.Mock }

func (m *MockSellerOrderUoWFactory) Create() commands.SellerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerOrderUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
