// Package http exposes the order lifecycle over an echo HTTP API.
// Handlers translate requests into commands and queries, and map the typed
// error kinds onto HTTP status codes. Every request is tenant-scoped
// through the X-Tenant-Id header; mutating requests also carry the acting
// user in X-User-Id.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

const (
	tenantHeader = "X-Tenant-Id"
	userHeader   = "X-User-Id"
)

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	CreateOrder             commands.CreateOrderCommandHandler
	UpdateOrder             commands.UpdateOrderCommandHandler
	ChangeOrderStatus       commands.ChangeOrderStatusCommandHandler
	DeleteOrder             commands.DeleteOrderCommandHandler
	RecordPayment           commands.RecordPaymentCommandHandler
	ApproveOrder            commands.ApproveOrderCommandHandler
	RejectOrder             commands.RejectOrderCommandHandler
	CreateTemplate          commands.CreateOrderTemplateCommandHandler
	DeleteTemplate          commands.DeleteOrderTemplateCommandHandler
	CreateOrderFromTemplate commands.CreateOrderFromTemplateCommandHandler
	ExecuteBulkOperation    commands.ExecuteBulkOperationCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetOrderByNumber   queries.GetOrderByNumberQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrderMetrics    queries.GetOrderMetricsQueryHandler
	GetOverdueOrders   queries.GetOverdueOrdersQueryHandler
	GetOrdersDueToday  queries.GetOrdersDueTodayQueryHandler
	GetPendingApproval queries.GetPendingApprovalOrdersQueryHandler
	ListTemplates      queries.ListTemplatesQueryHandler
	GetBulkOperation   queries.GetBulkOperationQueryHandler
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/metrics", s.GetOrderMetrics)
	api.GET("/orders/overdue", s.GetOverdueOrders)
	api.GET("/orders/due-today", s.GetOrdersDueToday)
	api.GET("/orders/pending-approval", s.GetPendingApprovalOrders)
	api.GET("/orders/number/:orderNumber", s.GetOrderByNumber)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/payments", s.RecordPayment)
	api.POST("/orders/:orderId/approve", s.ApproveOrder)
	api.POST("/orders/:orderId/reject", s.RejectOrder)

	api.POST("/templates", s.CreateTemplate)
	api.GET("/templates", s.ListTemplates)
	api.DELETE("/templates/:templateId", s.DeleteTemplate)
	api.POST("/templates/:templateId/orders", s.CreateOrderFromTemplate)

	api.POST("/bulk-operations", s.ExecuteBulkOperation)
	api.GET("/bulk-operations/:operationId", s.GetBulkOperation)
}

// tenantID extracts and validates the tenant scope of the request.
func tenantID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(tenantHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("tenant id header")
	}
	return parseID(raw, "tenant id header")
}

// userID extracts and validates the acting user of a mutating request.
func userID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("user id header")
	}
	return parseID(raw, "user id header")
}

// errorResponse maps a use-case error onto an HTTP status code and writes
// the JSON error body.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 error body without consulting the error kind.
// Used for malformed request bodies that never reach a command.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
