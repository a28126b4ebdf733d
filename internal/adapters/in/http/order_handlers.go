package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := parseID(request.CustomerID, "customer id")
	if err != nil {
		return errorResponse(ctx, err)
	}
	items, err := toItemInputs(request.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(tenant, customer, user, items)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.ShippingAmount != nil {
		cmd.SetShippingAmount(*request.ShippingAmount)
	}
	if request.PaymentTerms != nil {
		terms, termsErr := toPaymentTermsInput(*request.PaymentTerms)
		if termsErr != nil {
			return errorResponse(ctx, termsErr)
		}
		cmd.SetPaymentTerms(terms)
	}
	if request.Priority != "" {
		priority, priorityErr := order.ParsePriority(request.Priority)
		if priorityErr != nil {
			return errorResponse(ctx, priorityErr)
		}
		cmd.SetPriority(priority)
	}
	if request.Recurring != nil {
		recurring, recurringErr := toRecurringConfig(*request.Recurring)
		if recurringErr != nil {
			return errorResponse(ctx, recurringErr)
		}
		cmd.SetRecurring(recurring)
	}
	cmd.SetNotes(request.Notes)
	cmd.SetShippingAddress(request.ShippingAddress)

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}

// UpdateOrder handles PUT /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(tenant, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.Items != nil {
		items, itemsErr := toItemInputs(request.Items)
		if itemsErr != nil {
			return errorResponse(ctx, itemsErr)
		}
		cmd.SetItems(items)
	}
	if request.ShippingAmount != nil {
		cmd.SetShippingAmount(*request.ShippingAmount)
	}
	if request.PaymentTerms != nil {
		terms, termsErr := toPaymentTermsInput(*request.PaymentTerms)
		if termsErr != nil {
			return errorResponse(ctx, termsErr)
		}
		cmd.SetPaymentTerms(terms)
	}
	if request.Priority != nil {
		priority, priorityErr := order.ParsePriority(*request.Priority)
		if priorityErr != nil {
			return errorResponse(ctx, priorityErr)
		}
		cmd.SetPriority(priority)
	}
	if request.Notes != nil {
		cmd.SetNotes(*request.Notes)
	}
	if request.ShippingAddress != nil {
		cmd.SetShippingAddress(*request.ShippingAddress)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request changeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(tenant, orderID, status, user, request.Reason, request.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(tenant, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:orderId/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request recordPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	method, err := order.ParsePaymentMethod(request.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(tenant, orderID, request.Amount, method, user, request.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// ApproveOrder handles POST /api/v1/orders/:orderId/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request approveOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveOrderCommand(tenant, orderID, user, request.Comments)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.ApproveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// RejectOrder handles POST /api/v1/orders/:orderId/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request rejectOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(tenant, orderID, user, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := parseID(ctx.Param("orderId"), "order id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(tenant, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /api/v1/orders/number/:orderNumber.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderByNumberQuery(tenant, ctx.Param("orderNumber"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders with filter and pagination
// parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "Invalid page parameter")
		}
	}
	pageSize := 20
	if raw := ctx.QueryParam("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "Invalid page_size parameter")
		}
	}

	query, err := queries.NewListOrdersQuery(tenant, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.ParseStatus(raw)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		if err := query.SetStatus(status); err != nil {
			return errorResponse(ctx, err)
		}
	}
	if raw := ctx.QueryParam("payment_status"); raw != "" {
		paymentStatus, paymentErr := order.ParsePaymentStatus(raw)
		if paymentErr != nil {
			return errorResponse(ctx, paymentErr)
		}
		query.SetPaymentStatus(paymentStatus)
	}
	if raw := ctx.QueryParam("priority"); raw != "" {
		priority, priorityErr := order.ParsePriority(raw)
		if priorityErr != nil {
			return errorResponse(ctx, priorityErr)
		}
		if err := query.SetPriority(priority); err != nil {
			return errorResponse(ctx, err)
		}
	}
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customer, customerErr := parseID(raw, "customer id")
		if customerErr != nil {
			return errorResponse(ctx, customerErr)
		}
		if err := query.SetCustomerID(customer); err != nil {
			return errorResponse(ctx, err)
		}
	}
	if from, to, ok, rangeErr := parseDateRange(ctx); rangeErr != nil {
		return badRequest(ctx, "Invalid date range")
	} else if ok {
		query.SetOrderedBetween(from, to)
	}
	if raw := ctx.QueryParam("search"); raw != "" {
		query.SetSearch(raw)
	}

	response, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderMetrics handles GET /api/v1/orders/metrics.
func (s *Server) GetOrderMetrics(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderMetricsQuery(tenant)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if from, to, ok, rangeErr := parseDateRange(ctx); rangeErr != nil {
		return badRequest(ctx, "Invalid date range")
	} else if ok {
		query.SetWindow(from, to)
	}

	response, err := s.handlers.GetOrderMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueOrders handles GET /api/v1/orders/overdue.
func (s *Server) GetOverdueOrders(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOverdueOrdersQuery(tenant, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetOverdueOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersDueToday handles GET /api/v1/orders/due-today.
func (s *Server) GetOrdersDueToday(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrdersDueTodayQuery(tenant, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetOrdersDueToday.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPendingApprovalOrders handles GET /api/v1/orders/pending-approval.
func (s *Server) GetPendingApprovalOrders(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPendingApprovalOrdersQuery(tenant)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.GetPendingApproval.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// parseDateRange reads the optional from/to query parameters as RFC 3339
// timestamps. ok reports whether both were supplied.
func parseDateRange(ctx echo.Context) (from, to time.Time, ok bool, err error) {
	rawFrom := ctx.QueryParam("from")
	rawTo := ctx.QueryParam("to")
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	if from, err = time.Parse(time.RFC3339, rawFrom); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if to, err = time.Parse(time.RFC3339, rawTo); err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	return from, to, true, nil
}
