package queries_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	adapterauth "medmarket/internal/adapters/out/auth"
	"medmarket/internal/adapters/out/postgres/buyerrepo"
	"medmarket/internal/adapters/out/postgres/orderrepo"
	"medmarket/internal/adapters/out/postgres/sellerrepo"
	"medmarket/internal/core/application/usecases/queries"
	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repositories' aggregate tracking without
// recording anything; the read-model tests only use repositories to seed.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite exercises the read-model handlers
// against a PostgreSQL container seeded through the write-side
// repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB

	buyers  *buyerrepo.GormBuyerRepository
	sellers *sellerrepo.GormSellerRepository
	orders  *orderrepo.GormOrderRepository

	buyerSeq  int
	sellerSeq int
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&buyerrepo.BuyerDTO{},
		&sellerrepo.SellerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, sellers, buyers").Error)

	tracker := nopTracker{}
	suite.buyers = buyerrepo.NewGormBuyerRepository(suite.db, tracker)
	suite.sellers = sellerrepo.NewGormSellerRepository(suite.db, tracker)
	suite.orders = orderrepo.NewGormOrderRepository(suite.db, tracker)
	suite.buyerSeq = 0
	suite.sellerSeq = 0
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedBuyer(passwordHash string) *buyer.Buyer {
	suite.buyerSeq++
	seq := suite.buyerSeq

	aggregate, err := buyer.NewBuyer(
		kernel.NewUUID(),
		"Asha Singh",
		fmt.Sprintf("asha%d@example.in", seq),
		fmt.Sprintf("91234567%02d", seq),
		passwordHash,
		"3 Park Street, Kolkata",
		"700016",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.buyers.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) seedSeller(longitude, latitude float64, passwordHash string) *seller.Seller {
	suite.sellerSeq++
	seq := suite.sellerSeq

	location, err := kernel.NewGeoPoint(longitude, latitude)
	suite.Require().NoError(err)

	aggregate, err := seller.NewSeller(
		kernel.NewUUID(),
		"Ravi Kumar",
		fmt.Sprintf("Kumar Medicos %d", seq),
		fmt.Sprintf("ravi%d@kumarmedicos.in", seq),
		fmt.Sprintf("98765432%02d", seq),
		fmt.Sprintf("07ABCDE12%02dF1Z5", seq),
		fmt.Sprintf("DL-KA-20B-%04d", seq),
		fmt.Sprintf("DL-KA-21B-%04d", seq),
		passwordHash,
		location,
		"12 MG Road, Bengaluru",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.sellers.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(buyerID, sellerID kernel.UUID, longitude, latitude float64) *order.Order {
	origin, err := kernel.NewGeoPoint(longitude, latitude)
	suite.Require().NoError(err)

	paracetamol, err := order.NewItem("SKU-PARA-500", "Paracetamol 500mg", "Cipla", 12.50, 2)
	suite.Require().NoError(err)
	ibuprofen, err := order.NewItem("SKU-IBU-400", "Ibuprofen 400mg", "Sun Pharma", 8.00, 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		buyerID,
		sellerID,
		[]order.Item{paracetamol, ibuprofen},
		33.0,
		origin,
		"7 Lajpat Nagar, New Delhi",
		"uploads/rx/2026/08/1234.jpg",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) actor(role auth.Role, id kernel.UUID) auth.Actor {
	actor, err := auth.NewActor(role, id)
	suite.Require().NoError(err)
	return actor
}

const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.db)

	owner := suite.seedBuyer(testHash)
	store := suite.seedSeller(77.2100, 28.6139, testHash)
	seeded := suite.seedOrder(owner.ID(), store.ID(), 77.2090, 28.6139)

	suite.Run("buyer sees own order with items", func() {
		query, err := queries.NewGetOrderQuery(suite.actor(auth.RoleBuyer, owner.ID()), seeded.ID())
		suite.Require().NoError(err)

		response, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(seeded.ID(), response.ID)
		suite.Equal(owner.ID(), response.BuyerID)
		suite.Equal(store.ID(), response.SellerID)
		suite.InDelta(33.0, response.TotalAmount, 1e-9)
		suite.Equal("pending", response.Status)
		suite.Equal(int64(1), response.Version)
		suite.Require().Len(response.Items, 2)
		suite.Equal("SKU-PARA-500", response.Items[0].ProductID)
		suite.Equal(2, response.Items[0].Quantity)
	})

	suite.Run("assigned seller sees the order", func() {
		query, err := queries.NewGetOrderQuery(suite.actor(auth.RoleSeller, store.ID()), seeded.ID())
		suite.Require().NoError(err)

		response, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Equal(seeded.ID(), response.ID)
	})

	suite.Run("unrelated buyer is forbidden", func() {
		query, err := queries.NewGetOrderQuery(suite.actor(auth.RoleBuyer, kernel.NewUUID()), seeded.ID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})

	suite.Run("unrelated seller is forbidden", func() {
		query, err := queries.NewGetOrderQuery(suite.actor(auth.RoleSeller, kernel.NewUUID()), seeded.ID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})

	suite.Run("missing order is not found", func() {
		query, err := queries.NewGetOrderQuery(suite.actor(auth.RoleBuyer, owner.ID()), kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetBuyerOrders() {
	ctx := context.Background()
	handler := queries.NewGetBuyerOrdersQueryHandler(suite.db)

	owner := suite.seedBuyer(testHash)
	other := suite.seedBuyer(testHash)
	store := suite.seedSeller(77.2100, 28.6139, testHash)

	first := suite.seedOrder(owner.ID(), store.ID(), 77.2090, 28.6139)
	second := suite.seedOrder(owner.ID(), store.ID(), 77.2090, 28.6139)
	suite.seedOrder(other.ID(), store.ID(), 77.2090, 28.6139)

	// Push the second order's created_at clearly past the first's.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = created_at + interval '1 hour' WHERE id = ?",
		second.ID().Bytes(),
	).Error)

	query, err := queries.NewGetBuyerOrdersQuery(suite.actor(auth.RoleBuyer, owner.ID()))
	suite.Require().NoError(err)

	responses, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(responses, 2)
	suite.Equal(second.ID(), responses[0].ID)
	suite.Equal(first.ID(), responses[1].ID)
	suite.Len(responses[0].Items, 2)

	suite.Run("buyer with no orders gets an empty list", func() {
		query, err := queries.NewGetBuyerOrdersQuery(suite.actor(auth.RoleBuyer, kernel.NewUUID()))
		suite.Require().NoError(err)

		responses, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Empty(responses)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetSellerOrders() {
	ctx := context.Background()
	handler := queries.NewGetSellerOrdersQueryHandler(suite.db, 5_000)

	owner := suite.seedBuyer(testHash)
	store := suite.seedSeller(77.2090, 28.6139, testHash)

	// At this latitude 0.001 degrees of longitude is roughly 100 meters.
	near := suite.seedOrder(owner.ID(), store.ID(), 77.2100, 28.6139) // ~100m
	far := suite.seedOrder(owner.ID(), store.ID(), 77.4000, 28.6139)  // ~18km

	suite.Run("default radius keeps nearby orders only", func() {
		query, err := queries.NewGetSellerOrdersQuery(suite.actor(auth.RoleSeller, store.ID()), 0)
		suite.Require().NoError(err)

		responses, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Require().Len(responses, 1)
		suite.Equal(near.ID(), responses[0].ID)
	})

	suite.Run("radius override widens the listing", func() {
		query, err := queries.NewGetSellerOrdersQuery(suite.actor(auth.RoleSeller, store.ID()), 25_000)
		suite.Require().NoError(err)

		responses, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Require().Len(responses, 2)
		ids := []kernel.UUID{responses[0].ID, responses[1].ID}
		suite.Contains(ids, near.ID())
		suite.Contains(ids, far.ID())
	})

	suite.Run("unknown seller is not found", func() {
		query, err := queries.NewGetSellerOrdersQuery(suite.actor(auth.RoleSeller, kernel.NewUUID()), 0)
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
		// Missing row is the only failure that maps to not-found; anything
		// else from the seller lookup passes through untyped.
		suite.Require().Contains(err.Error(), sql.ErrNoRows.Error())
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetSellerProfile() {
	ctx := context.Background()
	handler := queries.NewGetSellerProfileQueryHandler(suite.db)

	store := suite.seedSeller(77.2090, 28.6139, testHash)

	query, err := queries.NewGetSellerProfileQuery(suite.actor(auth.RoleSeller, store.ID()))
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(store.ID(), response.ID)
	suite.Equal(store.OwnerName(), response.OwnerName)
	suite.Equal(store.StoreName(), response.StoreName)
	suite.Equal(store.Email(), response.Email)
	suite.Equal(store.TaxID(), response.TaxID)
	suite.True(response.AcceptingOrders)
	suite.Equal("pending", response.DocumentTax)
	suite.Equal("pending", response.DocumentPhotos)
	suite.Equal("pending", response.VerificationStatus)
	suite.Nil(response.VerifiedAt)
	suite.Zero(response.Metrics.TotalOrders)
	suite.True(response.Active)

	suite.Run("unknown seller is not found", func() {
		query, err := queries.NewGetSellerProfileQuery(suite.actor(auth.RoleSeller, kernel.NewUUID()))
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestLogin() {
	ctx := context.Background()

	hasher := adapterauth.NewBcryptHasher()
	gate, err := adapterauth.NewJwtAccessGate("test-secret", time.Hour)
	suite.Require().NoError(err)
	handler := queries.NewLoginQueryHandler(suite.db, hasher, gate)

	hash, err := hasher.Hash("s3cret-password")
	suite.Require().NoError(err)
	owner := suite.seedBuyer(hash)
	store := suite.seedSeller(77.2090, 28.6139, hash)

	suite.Run("buyer login issues a usable token", func() {
		query, err := queries.NewLoginQuery(auth.RoleBuyer, owner.Email(), "s3cret-password")
		suite.Require().NoError(err)

		response, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(owner.ID(), response.ID)
		suite.Equal("buyer", response.Role)

		actor, err := gate.Authenticate(response.Token)
		suite.Require().NoError(err)
		suite.Equal(owner.ID(), actor.ID())
		suite.True(actor.IsBuyer())
	})

	suite.Run("seller login issues a usable token", func() {
		query, err := queries.NewLoginQuery(auth.RoleSeller, store.Email(), "s3cret-password")
		suite.Require().NoError(err)

		response, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(store.ID(), response.ID)
		suite.Equal("seller", response.Role)

		actor, err := gate.Authenticate(response.Token)
		suite.Require().NoError(err)
		suite.True(actor.IsSeller())
	})

	suite.Run("wrong password is forbidden", func() {
		query, err := queries.NewLoginQuery(auth.RoleBuyer, owner.Email(), "wrong-password")
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})

	suite.Run("unknown email is forbidden, not not-found", func() {
		query, err := queries.NewLoginQuery(auth.RoleBuyer, "nobody@example.in", "s3cret-password")
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)
		suite.Require().ErrorIs(err, errs.ErrForbidden)
		suite.NotErrorIs(err, errs.ErrObjectNotFound)
	})
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
