package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/profitpulse/backend/internal/application/usecase/order"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/integration/entrypoint/dto"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
)

// OrderController handles order listing endpoints.
type OrderController struct {
	listOrdersUseCase *order.ListOrdersUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(listOrdersUseCase *order.ListOrdersUseCase) *OrderController {
	return &OrderController{
		listOrdersUseCase: listOrdersUseCase,
	}
}

// List handles GET /orders requests.
//
// Query parameters:
//   - page: 1-based page number, defaults to 1
//   - limit: page size, defaults to 10, capped at 100
//   - search: optional substring match on the order name
func (c *OrderController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	input := order.ListOrdersInput{
		UserID: userID,
		Search: ctx.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	output, err := c.listOrdersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output))
}
