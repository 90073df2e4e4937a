// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/profitpulse/backend/internal/application/usecase/order"
)

// OrderListResponse represents the response for the order listing API.
type OrderListResponse struct {
	Data    OrderListData `json:"data"`
	Message string        `json:"message"`
}

// OrderListData represents the data section of the order listing response.
type OrderListData struct {
	Docs        []OrderResponse `json:"docs"`
	TotalDocs   int64           `json:"totalDocs"`
	Limit       int             `json:"limit"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"totalPages"`
	HasNextPage bool            `json:"hasNextPage"`
	HasPrevPage bool            `json:"hasPrevPage"`
}

// OrderResponse represents a single order in the listing.
type OrderResponse struct {
	ID                string  `json:"id"`
	ExternalID        string  `json:"externalId"`
	OrderName         string  `json:"orderName"`
	TotalSales        float64 `json:"totalSales"`
	NetSales          float64 `json:"netSales"`
	ShippingCost      float64 `json:"shippingCost"`
	HandlingCost      float64 `json:"handlingCost"`
	COGS              float64 `json:"cogs"`
	PaymentGatewayFee float64 `json:"paymentGatewayFee"`
	Currency          string  `json:"currency"`
	FinancialStatus   string  `json:"financialStatus"`
	ProcessedAt       string  `json:"processedAt"`
}

// ToOrderListResponse converts a listing output to its DTO.
func ToOrderListResponse(output *order.ListOrdersOutput) OrderListResponse {
	docs := make([]OrderResponse, len(output.Orders))
	for i, record := range output.Orders {
		totalSales, _ := record.TotalSales.Float64()
		netSales, _ := record.NetSales.Float64()
		shippingCost, _ := record.ShippingCost.Float64()
		handlingCost, _ := record.HandlingCost.Float64()
		cogs, _ := record.COGS.Float64()
		fee, _ := record.PaymentGatewayFee.Float64()
		docs[i] = OrderResponse{
			ID:                record.ID.String(),
			ExternalID:        record.ExternalID,
			OrderName:         record.OrderName,
			TotalSales:        totalSales,
			NetSales:          netSales,
			ShippingCost:      shippingCost,
			HandlingCost:      handlingCost,
			COGS:              cogs,
			PaymentGatewayFee: fee,
			Currency:          record.Currency,
			FinancialStatus:   string(record.FinancialStatus),
			ProcessedAt:       record.ProcessedAt.UTC().Format(time.RFC3339),
		}
	}

	return OrderListResponse{
		Data: OrderListData{
			Docs:        docs,
			TotalDocs:   output.Pagination.Total,
			Limit:       output.Pagination.Limit,
			Page:        output.Pagination.Page,
			TotalPages:  output.Pagination.TotalPages,
			HasNextPage: output.Pagination.HasNextPage,
			HasPrevPage: output.Pagination.HasPrevPage,
		},
		Message: "Orders fetched successfully",
	}
}
