// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/profitpulse/backend/internal/application/usecase/analytics"
)

// ChannelPerformanceResponse represents the response for the ad-platform
// analytics API.
type ChannelPerformanceResponse struct {
	Data    ChannelPerformanceData `json:"data"`
	Message string                 `json:"message"`
}

// ChannelPerformanceData represents the data section of the analytics response.
type ChannelPerformanceData struct {
	PieData []PlatformTotalResponse  `json:"pieData"`
	BarData []DailyChannelRowResponse `json:"barData"`
}

// PlatformTotalResponse represents one channel's total spend.
type PlatformTotalResponse struct {
	Channel    string  `json:"channel"`
	TotalSpend float64 `json:"totalSpend"`
}

// DailyChannelRowResponse represents one day's spend keyed by channel, e.g.
// {"date": "2024-01-01", "META": 50, "TIKTOK": 30}.
type DailyChannelRowResponse map[string]interface{}

// ToChannelPerformanceResponse converts channel performance output to its DTO.
func ToChannelPerformanceResponse(output *analytics.GetChannelPerformanceOutput) ChannelPerformanceResponse {
	pieData := make([]PlatformTotalResponse, len(output.PlatformBreakdown))
	for i, platform := range output.PlatformBreakdown {
		total, _ := platform.TotalSpend.Float64()
		pieData[i] = PlatformTotalResponse{
			Channel:    string(platform.Channel),
			TotalSpend: total,
		}
	}

	barData := make([]DailyChannelRowResponse, len(output.DailyTrend))
	for i, day := range output.DailyTrend {
		row := DailyChannelRowResponse{"date": day.Date}
		for _, amount := range day.Amounts {
			value, _ := amount.Amount.Float64()
			row[string(amount.Channel)] = value
		}
		barData[i] = row
	}

	return ChannelPerformanceResponse{
		Data: ChannelPerformanceData{
			PieData: pieData,
			BarData: barData,
		},
		Message: "Analytics fetched successfully",
	}
}
