// Package http exposes the order-dispatch API over Echo.
package http

import (
	"errors"
	"net/http"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	assignMasterHandler   commands.AssignMasterCommandHandler
	attachEvidenceHandler commands.AttachEvidenceCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getAllMastersHandler queries.GetAllMastersQueryHandler
	getMasterHandler     queries.GetMasterQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignMasterHandler commands.AssignMasterCommandHandler,
	attachEvidenceHandler commands.AttachEvidenceCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllMastersHandler queries.GetAllMastersQueryHandler,
	getMasterHandler queries.GetMasterQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		assignMasterHandler:   assignMasterHandler,
		attachEvidenceHandler: attachEvidenceHandler,
		completeOrderHandler:  completeOrderHandler,
		getOrderHandler:       getOrderHandler,
		getAllMastersHandler:  getAllMastersHandler,
		getMasterHandler:      getMasterHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/assign", s.AssignMaster)
	api.POST("/orders/:orderId/adl", s.AttachEvidence)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/masters", s.GetMasters)
	api.GET("/masters/:masterId", s.GetMaster)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
	}

	var customer *order.Customer
	if request.Customer != nil {
		customer = &order.Customer{
			Name:  request.Customer.Name,
			Phone: request.Customer.Phone,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		request.Title,
		request.Description,
		customer,
		kernel.NewGeoPoint(request.Geo.Lat, request.Geo.Lng),
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid order id")
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// AssignMaster handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignMaster(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid order id")
	}

	cmd, err := commands.NewAssignMasterCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.assignMasterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// AttachEvidence handles POST /api/v1/orders/:orderId/adl.
func (s *Server) AttachEvidence(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid order id")
	}

	var request AttachEvidenceRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
	}

	var lat, lng *float64
	if request.Gps != nil {
		lat = request.Gps.Lat
		lng = request.Gps.Lng
	}

	evidenceID := kernel.NewUUID()
	cmd, err := commands.NewAttachEvidenceCommand(
		evidenceID,
		orderID,
		order.MediaType(request.Type),
		request.URL,
		lat,
		lng,
		request.CapturedAt,
		request.Meta,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.attachEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	// The command constructor guarantees gps and capturedAt are present here.
	capturedAt := request.CapturedAt.UTC().Format(time.RFC3339)
	return ctx.JSON(http.StatusCreated, EvidenceResponse{
		ID:         evidenceID.String(),
		OrderID:    orderID.String(),
		Type:       request.Type,
		URL:        request.URL,
		Gps:        &GeoPayload{Lat: *lat, Lng: *lng},
		CapturedAt: &capturedAt,
		Meta:       request.Meta,
	})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetMasters handles GET /api/v1/masters.
func (s *Server) GetMasters(ctx echo.Context) error {
	query := queries.NewGetAllMastersQuery()

	masters, err := s.getAllMastersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]MasterResponse, 0, len(masters))
	for _, m := range masters {
		response = append(response, toMasterResponse(m))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMaster handles GET /api/v1/masters/:masterId.
func (s *Server) GetMaster(ctx echo.Context) error {
	masterID, err := parseID(ctx.Param("masterId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", "invalid master id")
	}

	query, err := queries.NewGetMasterQuery(masterID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.getMasterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMasterResponse(result))
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(result))
}

func parseID(raw string) (kernel.UUID, error) {
	return kernel.UUIDFromString(raw)
}

// writeDomainError maps application and domain errors to HTTP status codes.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, order.ErrMasterAlreadyAssigned),
		errors.Is(err, order.ErrOrderAlreadyCompleted):
		return writeError(ctx, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, commands.ErrNoAvailableMasters),
		errors.Is(err, commands.ErrValidEvidenceRequired):
		return writeError(ctx, http.StatusPreconditionFailed, "PRECONDITION_FAILED", err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func writeError(ctx echo.Context, status int, code string, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: code, Message: message})
}
