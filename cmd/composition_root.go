package cmd

import (
	"log/slog"

	httpin "medmarket/internal/adapters/in/http"
	authout "medmarket/internal/adapters/out/auth"
	"medmarket/internal/adapters/out/postgres"
	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/application/usecases/queries"
	"medmarket/internal/core/domain/services"
	"medmarket/internal/core/ports"
	"medmarket/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All object graph
// construction happens here; the rest of the application receives ready
// dependencies.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     *authout.BcryptHasher
	gate       *authout.JwtAccessGate
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	gate, err := authout.NewJwtAccessGate(config.JwtSecret, config.JwtTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     authout.NewBcryptHasher(),
		gate:       gate,
	}, nil
}

// AccessGate exposes the token adapter for the HTTP auth middleware.
func (c *CompositionRoot) AccessGate() ports.AccessGate {
	return c.gate
}

func (c *CompositionRoot) CreateRegisterBuyerCommandHandler() commands.RegisterBuyerCommandHandler {
	var f commands.BuyerUoWFactory = FuncBuyerUoWFactory(func() commands.BuyerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterBuyerCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRegisterSellerCommandHandler() commands.RegisterSellerCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterSellerCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateSetAcceptingOrdersCommandHandler() commands.SetAcceptingOrdersCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAcceptingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewSellerDocumentsCommandHandler() commands.ReviewSellerDocumentsCommandHandler {
	var f commands.SellerUoWFactory = FuncSellerUoWFactory(func() commands.SellerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewSellerDocumentsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.SellerOrderUoWFactory = FuncSellerOrderUoWFactory(func() commands.SellerOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewSellerMatcher(), c.config.AssignRadiusM)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshSellerMetricsCommandHandler() commands.RefreshSellerMetricsCommandHandler {
	var f commands.SellerOrderUoWFactory = FuncSellerOrderUoWFactory(func() commands.SellerOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshSellerMetricsCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.hasher, c.gate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB, c.config.SellerListRadiusM)
}

func (c *CompositionRoot) CreateGetSellerProfileQueryHandler() queries.GetSellerProfileQueryHandler {
	return queries.NewGetSellerProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterBuyerCommandHandler(),
		c.CreateRegisterSellerCommandHandler(),
		c.CreateSetAcceptingOrdersCommandHandler(),
		c.CreateReviewSellerDocumentsCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateLoginQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetBuyerOrdersQueryHandler(),
		c.CreateGetSellerOrdersQueryHandler(),
		c.CreateGetSellerProfileQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshSellerMetricsCommandHandler(),
		c.config.MetricsCronSpec,
		logger,
	)
}

type FuncBuyerUoWFactory func() commands.BuyerUoW

func (f FuncBuyerUoWFactory) Create() commands.BuyerUoW {
	return f()
}

type FuncSellerUoWFactory func() commands.SellerUoW

func (f FuncSellerUoWFactory) Create() commands.SellerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSellerOrderUoWFactory func() commands.SellerOrderUoW

func (f FuncSellerOrderUoWFactory) Create() commands.SellerOrderUoW {
	return f()
}
