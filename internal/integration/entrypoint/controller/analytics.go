package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profitpulse/backend/internal/application/usecase/analytics"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/integration/entrypoint/dto"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles ad-platform analytics endpoints.
type AnalyticsController struct {
	getChannelPerformanceUseCase *analytics.GetChannelPerformanceUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	getChannelPerformanceUseCase *analytics.GetChannelPerformanceUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		getChannelPerformanceUseCase: getChannelPerformanceUseCase,
	}
}

// GetChannelPerformance handles GET /analytics/channels requests.
func (c *AnalyticsController) GetChannelPerformance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := analytics.GetChannelPerformanceInput{UserID: userID}

	output, err := c.getChannelPerformanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChannelPerformanceResponse(output))
}
