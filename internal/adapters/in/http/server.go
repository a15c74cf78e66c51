// Package http exposes the marketplace over a JSON API. Handlers translate
// between the wire format and the application's commands and queries; all
// domain decisions stay behind those.
package http

import (
	"net/http"
	"strconv"
	"time"

	"medmarket/internal/core/application/usecases/commands"
	"medmarket/internal/core/application/usecases/queries"
	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/core/ports"
	"medmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerBuyerHandler   commands.RegisterBuyerCommandHandler
	registerSellerHandler  commands.RegisterSellerCommandHandler
	setAcceptingHandler    commands.SetAcceptingOrdersCommandHandler
	reviewDocumentsHandler commands.ReviewSellerDocumentsCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	loginHandler            queries.LoginQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getBuyerOrdersHandler   queries.GetBuyerOrdersQueryHandler
	getSellerOrdersHandler  queries.GetSellerOrdersQueryHandler
	getSellerProfileHandler queries.GetSellerProfileQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerBuyerHandler commands.RegisterBuyerCommandHandler,
	registerSellerHandler commands.RegisterSellerCommandHandler,
	setAcceptingHandler commands.SetAcceptingOrdersCommandHandler,
	reviewDocumentsHandler commands.ReviewSellerDocumentsCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
	getSellerProfileHandler queries.GetSellerProfileQueryHandler,
) *Server {
	return &Server{
		registerBuyerHandler:    registerBuyerHandler,
		registerSellerHandler:   registerSellerHandler,
		setAcceptingHandler:     setAcceptingHandler,
		reviewDocumentsHandler:  reviewDocumentsHandler,
		createOrderHandler:      createOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		loginHandler:            loginHandler,
		getOrderHandler:         getOrderHandler,
		getBuyerOrdersHandler:   getBuyerOrdersHandler,
		getSellerOrdersHandler:  getSellerOrdersHandler,
		getSellerProfileHandler: getSellerProfileHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance. Routes
// past registration and login require a bearer token resolved by the gate.
func (s *Server) RegisterRoutes(e *echo.Echo, gate ports.AccessGate) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/buyer/register", s.RegisterBuyer)
	api.POST("/buyer/login", s.LoginBuyer)
	api.POST("/seller/register", s.RegisterSeller)
	api.POST("/seller/login", s.LoginSeller)

	authed := api.Group("", AuthMiddleware(gate))
	authed.GET("/seller/profile", s.GetSellerProfile)
	authed.PATCH("/seller/accepting", s.SetAccepting)
	authed.PATCH("/seller/documents", s.ReviewSellerDocuments)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/buyer", s.GetBuyerOrders)
	authed.GET("/orders/seller", s.GetSellerOrders)
	authed.GET("/orders/:orderId", s.GetOrder)
	authed.PATCH("/orders/:orderId/status", s.TransitionOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type registerBuyerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// RegisterBuyer handles POST /api/buyer/register.
func (s *Server) RegisterBuyer(ctx echo.Context) error {
	var request registerBuyerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewRegisterBuyerCommand(
		request.Name,
		request.Email,
		request.Mobile,
		request.Password,
		request.Address,
		request.Pincode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.registerBuyerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

type registerSellerRequest struct {
	OwnerName    string  `json:"ownerName"`
	StoreName    string  `json:"storeName"`
	Email        string  `json:"email"`
	Mobile       string  `json:"mobile"`
	TaxID        string  `json:"taxId"`
	DrugLicense1 string  `json:"drugLicense1"`
	DrugLicense2 string  `json:"drugLicense2"`
	Password     string  `json:"password"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Address      string  `json:"address"`
}

// RegisterSeller handles POST /api/seller/register.
func (s *Server) RegisterSeller(ctx echo.Context) error {
	var request registerSellerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	location, err := kernel.NewGeoPoint(request.Longitude, request.Latitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterSellerCommand(
		request.OwnerName,
		request.StoreName,
		request.Email,
		request.Mobile,
		request.TaxID,
		request.DrugLicense1,
		request.DrugLicense2,
		request.Password,
		location,
		request.Address,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.registerSellerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Role  string `json:"role"`
}

// LoginBuyer handles POST /api/buyer/login.
func (s *Server) LoginBuyer(ctx echo.Context) error {
	return s.login(ctx, auth.RoleBuyer)
}

// LoginSeller handles POST /api/seller/login.
func (s *Server) LoginSeller(ctx echo.Context) error {
	return s.login(ctx, auth.RoleSeller)
}

func (s *Server) login(ctx echo.Context, role auth.Role) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewLoginQuery(role, request.Email, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: response.Token,
		ID:    response.ID.String(),
		Role:  response.Role,
	})
}

type setAcceptingRequest struct {
	Accepting bool `json:"accepting"`
}

// SetAccepting handles PATCH /api/seller/accepting.
func (s *Server) SetAccepting(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request setAcceptingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewSetAcceptingOrdersCommand(actor, request.Accepting)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setAcceptingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reviewDocumentsRequest struct {
	SellerID string `json:"sellerId"`
	Tax      string `json:"tax"`
	License1 string `json:"license1"`
	License2 string `json:"license2"`
	Photos   string `json:"photos"`
}

// ReviewSellerDocuments handles PATCH /api/seller/documents.
func (s *Server) ReviewSellerDocuments(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request reviewDocumentsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	sellerID, err := kernel.UUIDFromString(request.SellerID)
	if err != nil {
		return writeError(ctx, err)
	}

	flags, err := parseDocumentFlags(request)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewSellerDocumentsCommand(actor, sellerID, flags)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reviewDocumentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseDocumentFlags(request reviewDocumentsRequest) (seller.DocumentFlags, error) {
	var (
		flags seller.DocumentFlags
		err   error
	)

	if flags.Tax, err = seller.DocumentStatusFromString(request.Tax); err != nil {
		return seller.DocumentFlags{}, err
	}
	if flags.License1, err = seller.DocumentStatusFromString(request.License1); err != nil {
		return seller.DocumentFlags{}, err
	}
	if flags.License2, err = seller.DocumentStatusFromString(request.License2); err != nil {
		return seller.DocumentFlags{}, err
	}
	if flags.Photos, err = seller.DocumentStatusFromString(request.Photos); err != nil {
		return seller.DocumentFlags{}, err
	}

	return flags, nil
}

type orderItemRequest struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

type createOrderRequest struct {
	Items             []orderItemRequest `json:"items"`
	TotalAmount       float64            `json:"totalAmount"`
	Longitude         float64            `json:"longitude"`
	Latitude          float64            `json:"latitude"`
	Address           string             `json:"address"`
	PrescriptionImage string             `json:"prescriptionImage"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	origin, err := kernel.NewGeoPoint(request.Longitude, request.Latitude)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.ItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemInput{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Manufacturer: item.Manufacturer,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor,
		items,
		request.TotalAmount,
		origin,
		request.Address,
		request.PrescriptionImage,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

type transitionOrderRequest struct {
	Status string `json:"status"`
}

// TransitionOrder handles PATCH /api/orders/:orderId/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request transitionOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestBody(ctx)
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(actor, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderItemResponse struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

type orderResponse struct {
	ID                string              `json:"id"`
	BuyerID           string              `json:"buyerId"`
	SellerID          string              `json:"sellerId"`
	Items             []orderItemResponse `json:"items"`
	TotalAmount       float64             `json:"totalAmount"`
	Longitude         float64             `json:"longitude"`
	Latitude          float64             `json:"latitude"`
	Address           string              `json:"address"`
	PrescriptionImage string              `json:"prescriptionImage,omitempty"`
	Status            string              `json:"status"`
	Version           int64               `json:"version"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func toOrderResponse(response queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, orderItemResponse{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Manufacturer: item.Manufacturer,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		})
	}

	return orderResponse{
		ID:                response.ID.String(),
		BuyerID:           response.BuyerID.String(),
		SellerID:          response.SellerID.String(),
		Items:             items,
		TotalAmount:       response.TotalAmount,
		Longitude:         response.Origin.Longitude(),
		Latitude:          response.Origin.Latitude(),
		Address:           response.Address,
		PrescriptionImage: response.PrescriptionImage,
		Status:            response.Status,
		Version:           response.Version,
		CreatedAt:         response.CreatedAt,
		UpdatedAt:         response.UpdatedAt,
	}
}

func toOrderResponses(responses []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, 0, len(responses))
	for _, response := range responses {
		out = append(out, toOrderResponse(response))
	}
	return out
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// GetBuyerOrders handles GET /api/orders/buyer.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(responses))
}

// GetSellerOrders handles GET /api/orders/seller. An optional radiusM query
// parameter overrides the configured listing radius.
func (s *Server) GetSellerOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var radiusM float64
	if raw := ctx.QueryParam("radiusM"); raw != "" {
		radiusM, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidError("radiusM"))
		}
	}

	query, err := queries.NewGetSellerOrdersQuery(actor, radiusM)
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(responses))
}

type sellerMetricsResponse struct {
	TotalOrders     int64      `json:"totalOrders"`
	CompletedOrders int64      `json:"completedOrders"`
	CancelledOrders int64      `json:"cancelledOrders"`
	LastActiveAt    *time.Time `json:"lastActiveAt,omitempty"`
}

type sellerProfileResponse struct {
	ID                 string                `json:"id"`
	OwnerName          string                `json:"ownerName"`
	StoreName          string                `json:"storeName"`
	Email              string                `json:"email"`
	Mobile             string                `json:"mobile"`
	TaxID              string                `json:"taxId"`
	DrugLicense1       string                `json:"drugLicense1"`
	DrugLicense2       string                `json:"drugLicense2"`
	Longitude          float64               `json:"longitude"`
	Latitude           float64               `json:"latitude"`
	Address            string                `json:"address"`
	AcceptingOrders    bool                  `json:"acceptingOrders"`
	DocumentTax        string                `json:"documentTax"`
	DocumentLicense1   string                `json:"documentLicense1"`
	DocumentLicense2   string                `json:"documentLicense2"`
	DocumentPhotos     string                `json:"documentPhotos"`
	VerificationStatus string                `json:"verificationStatus"`
	VerifiedAt         *time.Time            `json:"verifiedAt,omitempty"`
	Metrics            sellerMetricsResponse `json:"metrics"`
	Active             bool                  `json:"active"`
	CreatedAt          time.Time             `json:"createdAt"`
}

// GetSellerProfile handles GET /api/seller/profile.
func (s *Server) GetSellerProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSellerProfileQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getSellerProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sellerProfileResponse{
		ID:                 profile.ID.String(),
		OwnerName:          profile.OwnerName,
		StoreName:          profile.StoreName,
		Email:              profile.Email,
		Mobile:             profile.Mobile,
		TaxID:              profile.TaxID,
		DrugLicense1:       profile.DrugLicense1,
		DrugLicense2:       profile.DrugLicense2,
		Longitude:          profile.Location.Longitude(),
		Latitude:           profile.Location.Latitude(),
		Address:            profile.Address,
		AcceptingOrders:    profile.AcceptingOrders,
		DocumentTax:        profile.DocumentTax,
		DocumentLicense1:   profile.DocumentLicense1,
		DocumentLicense2:   profile.DocumentLicense2,
		DocumentPhotos:     profile.DocumentPhotos,
		VerificationStatus: profile.VerificationStatus,
		VerifiedAt:         profile.VerifiedAt,
		Metrics: sellerMetricsResponse{
			TotalOrders:     profile.Metrics.TotalOrders,
			CompletedOrders: profile.Metrics.CompletedOrders,
			CancelledOrders: profile.Metrics.CancelledOrders,
			LastActiveAt:    profile.Metrics.LastActiveAt,
		},
		Active:    profile.Active,
		CreatedAt: profile.CreatedAt,
	})
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "bad_request",
		Message: "invalid request body",
	})
}
