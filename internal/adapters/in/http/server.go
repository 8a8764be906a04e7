package http

import (
	"errors"
	"net/http"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the marketplace HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	claimOrderHandler        commands.ClaimOrderCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	createRiderHandler       commands.CreateRiderCommandHandler

	// Query handlers
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:           checkoutHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		claimOrderHandler:         claimOrderHandler,
		recordPaymentHandler:      recordPaymentHandler,
		createRiderHandler:        createRiderHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getAvailableRidersHandler: getAvailableRidersHandler,
	}
}

// RegisterRoutes binds all marketplace endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.Checkout)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/payment", s.RecordPayment)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/riders", s.CreateRider)
	api.GET("/riders/available", s.GetAvailableRiders)

	e.GET("/health", s.Health)
}

// Checkout handles POST /api/v1/orders - places a new order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	vendorID, err := kernel.UUIDFromBytes(req.VendorID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vendor id: " + err.Error(),
		})
	}

	lines := make([]order.Item, 0, len(req.Lines))
	for _, line := range req.Lines {
		menuItemID, idErr := kernel.UUIDFromBytes(line.MenuItemID[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid menu item id: " + idErr.Error(),
			})
		}

		unitPrice, priceErr := kernel.NewMoney(line.UnitPrice)
		if priceErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid unit price: " + priceErr.Error(),
			})
		}

		item, itemErr := order.NewItem(menuItemID, unitPrice, line.Quantity, line.SpecialInstructions)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid cart line: " + itemErr.Error(),
			})
		}
		lines = append(lines, item)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(orderID, customerID, vendorID, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.Bytes()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an
// order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + req.Status,
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderMutationError(ctx, handleErr, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusOK)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - binds a rider to a
// confirmed order.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var req ClaimOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	riderID, err := kernel.UUIDFromBytes(req.RiderID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rider id: " + err.Error(),
		})
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, riderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid claim: " + err.Error(),
		})
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order or rider not found",
			})
		case errors.Is(handleErr, commands.ErrOrderAlreadyClaimed),
			errors.Is(handleErr, commands.ErrRiderNotFree):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: handleErr.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to claim order",
			})
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordPayment handles POST /api/v1/orders/:id/payment - applies a
// settlement outcome reported by the payment gateway.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, commands.PaymentOutcome(req.Outcome))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment outcome: " + err.Error(),
		})
	}

	if handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderMutationError(ctx, handleErr, "Failed to record payment")
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateRider handles POST /api/v1/riders - registers a new rider.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req CreateRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	riderID := kernel.NewUUID()

	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rider data: " + err.Error(),
		})
	}

	if handleErr := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create rider",
		})
	}

	return ctx.JSON(http.StatusCreated, CreateRiderResponse{RiderID: riderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all
// non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:     o.ID.Bytes(),
			Status: o.Status.String(),
			Total:  o.Total.Amount(),
		}
		if o.RiderID != nil {
			riderUUID := o.RiderID.Bytes()
			response[i].RiderID = &riderUUID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableRiders handles GET /api/v1/riders/available - retrieves all
// riders free to take an order.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	query := queries.NewGetAvailableRidersQuery()

	riders, err := s.getAvailableRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve riders",
		})
	}

	response := make([]AvailableRider, len(riders))
	for i, r := range riders {
		response[i] = AvailableRider{
			ID:   r.ID.Bytes(),
			Name: r.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

// orderMutationError maps order write failures to HTTP status codes shared
// by the status change and payment endpoints.
func (s *Server) orderMutationError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPaymentAlreadySettled),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
