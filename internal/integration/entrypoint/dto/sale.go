// Package dto defines request and response types for the API endpoints.
package dto

import (
	"time"

	"github.com/cakebook/backend/internal/domain/entity"
)

// SaleItemRequest represents one line item in a sale creation request.
type SaleItemRequest struct {
	ItemType     string  `json:"itemType" binding:"required,oneof=Cake Cupcake"`
	Flavor       string  `json:"flavor" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required"`
	PricePerItem float64 `json:"pricePerItem"`
}

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	SaleDate      string            `json:"saleDate" binding:"required"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=Cash Bank"`
	Notes         string            `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// SaleItemResponse represents one line item in a sale response.
type SaleItemResponse struct {
	ID           string `json:"id"`
	ItemType     string `json:"itemType"`
	Flavor       string `json:"flavor"`
	Quantity     int    `json:"quantity"`
	PricePerItem string `json:"pricePerItem"`
	Subtotal     string `json:"subtotal"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID            string             `json:"id"`
	SaleDate      string             `json:"saleDate"`
	PaymentMethod string             `json:"paymentMethod"`
	TotalAmount   string             `json:"totalAmount"`
	Notes         string             `json:"notes"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// SaleListResponse represents the response for listing sales. Advisory is
// present only while a rate-limited fetch waits for its automatic retry.
type SaleListResponse struct {
	Sales    []SaleResponse `json:"sales"`
	Advisory string         `json:"advisory,omitempty"`
}

// ToSaleResponse converts a Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ID:           item.ID.String(),
			ItemType:     string(item.ItemType),
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem.String(),
			Subtotal:     item.Subtotal.String(),
		})
	}

	return SaleResponse{
		ID:            sale.ID.String(),
		SaleDate:      sale.SaleDate.Format("2006-01-02"),
		PaymentMethod: string(sale.PaymentMethod),
		TotalAmount:   sale.TotalAmount.String(),
		Notes:         sale.Notes,
		Items:         items,
		CreatedAt:     sale.CreatedAt,
	}
}

// ToSaleListResponse converts a slice of sales to a SaleListResponse DTO.
func ToSaleListResponse(sales []*entity.Sale, advisory string) SaleListResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, ToSaleResponse(sale))
	}
	return SaleListResponse{
		Sales:    responses,
		Advisory: advisory,
	}
}
