package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
)

// CreateTemplate handles POST /api/v1/templates.
func (s *Server) CreateTemplate(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request createTemplateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderTemplateCommand(tenant, request.Name, items)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.CustomerID != "" {
		customer, customerErr := parseID(request.CustomerID, "customer id")
		if customerErr != nil {
			return errorResponse(ctx, customerErr)
		}
		if err := cmd.SetCustomerID(customer); err != nil {
			return errorResponse(ctx, err)
		}
	}
	if request.PaymentTerms != nil {
		terms, termsErr := toPaymentTermsInput(*request.PaymentTerms)
		if termsErr != nil {
			return errorResponse(ctx, termsErr)
		}
		cmd.SetPaymentTerms(terms)
	}
	cmd.SetTags(request.Tags)

	created, err := s.handlers.CreateTemplate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, newTemplateResponse(created))
}

// ListTemplates handles GET /api/v1/templates.
func (s *Server) ListTemplates(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListTemplatesQuery(tenant)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.handlers.ListTemplates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteTemplate handles DELETE /api/v1/templates/:templateId.
func (s *Server) DeleteTemplate(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	templateID, err := parseID(ctx.Param("templateId"), "template id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderTemplateCommand(tenant, templateID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteTemplate.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderFromTemplate handles POST /api/v1/templates/:templateId/orders.
func (s *Server) CreateOrderFromTemplate(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	user, err := userID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	templateID, err := parseID(ctx.Param("templateId"), "template id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request createOrderFromTemplateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderFromTemplateCommand(tenant, templateID, user)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.CustomerID != "" {
		customer, customerErr := parseID(request.CustomerID, "customer id")
		if customerErr != nil {
			return errorResponse(ctx, customerErr)
		}
		if err := cmd.SetCustomerID(customer); err != nil {
			return errorResponse(ctx, err)
		}
	}

	created, err := s.handlers.CreateOrderFromTemplate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}
