package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/bulkop"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// ExecuteBulkOperation handles POST /api/v1/bulk-operations. The batch runs
// synchronously; the response is the finished record with per-target
// errors.
func (s *Server) ExecuteBulkOperation(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request bulkOperationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	opType, err := bulkop.ParseType(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		orderID, idErr := parseID(raw, "order id")
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewExecuteBulkOperationCommand(tenant, opType, orderIDs, user)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.TargetStatus != "" {
		status, statusErr := order.ParseStatus(request.TargetStatus)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		cmd.SetTargetStatus(status)
	}
	if request.TargetPriority != "" {
		priority, priorityErr := order.ParsePriority(request.TargetPriority)
		if priorityErr != nil {
			return errorResponse(ctx, priorityErr)
		}
		cmd.SetTargetPriority(priority)
	}
	cmd.SetReason(request.Reason)

	record, err := s.handlers.ExecuteBulkOperation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newBulkOperationResponse(record))
}

// GetBulkOperation handles GET /api/v1/bulk-operations/:operationId.
func (s *Server) GetBulkOperation(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	operationID, err := parseID(ctx.Param("operationId"), "operation id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetBulkOperationQuery(tenant, operationID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetBulkOperation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}
