package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/profitpulse/backend/internal/application/usecase/report"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/integration/entrypoint/dto"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the profit dashboard endpoint.
type DashboardController struct {
	getProfitReportUseCase *report.GetProfitReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getProfitReportUseCase *report.GetProfitReportUseCase) *DashboardController {
	return &DashboardController{
		getProfitReportUseCase: getProfitReportUseCase,
	}
}

// GetStats handles GET /dashboard/stats requests.
//
// Query parameters:
//   - timeframe: daily (default), weekly, or monthly
//   - startDate, endDate: YYYY-MM-DD; when absent, the window defaults to the
//     timeframe's lookback ending today
func (c *DashboardController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	granularity := report.Granularity(ctx.DefaultQuery("timeframe", string(report.GranularityDaily)))
	if !granularity.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Timeframe must be: daily, weekly, or monthly",
			Code:  string(domainerror.ErrCodeInvalidGranularity),
		})
		return
	}

	startDate, endDate, err := resolveDateRange(
		ctx.Query("startDate"),
		ctx.Query("endDate"),
		report.DefaultLookback(granularity),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := report.GetProfitReportInput{
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
	}

	output, err := c.getProfitReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// resolveDateRange parses the optional date parameters, falling back to a
// lookback window ending today. Bounds are widened to whole days so a range
// like 2025-01-01..2025-01-31 covers the last day in full.
func resolveDateRange(startStr, endStr string, lookback time.Duration) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	endDate := now
	startDate := now.Add(-lookback)

	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = parsed
	}

	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	endDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 999999999, time.UTC)

	return startDate, endDate, nil
}

// handleReportError maps reporting errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusInternalServerError
		switch reportErr.Code {
		case domainerror.ErrCodeInvalidGranularity,
			domainerror.ErrCodeInvalidDateRange,
			domainerror.ErrCodeInvalidDateFormat:
			status = http.StatusBadRequest
		case domainerror.ErrCodeStoreNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}
