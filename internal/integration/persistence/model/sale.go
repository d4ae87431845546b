// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleDate      time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod string          `gorm:"type:varchar(10);not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`

	Items []SaleItemModel `gorm:"foreignKey:SaleID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel represents the sale_items table in the database.
type SaleItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemType     string          `gorm:"type:varchar(10);not null"`
	Flavor       string          `gorm:"type:varchar(50);not null"`
	Quantity     int             `gorm:"not null"`
	PricePerItem decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleModel with its items to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	items := make([]entity.SaleLineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.SaleLineItem{
			ID:           item.ID,
			SaleID:       item.SaleID,
			ItemType:     entity.ItemType(item.ItemType),
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			Subtotal:     item.Subtotal,
		}
	}

	return &entity.Sale{
		ID:            m.ID,
		UserID:        m.UserID,
		SaleDate:      m.SaleDate,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		Items:         items,
		CreatedAt:     m.CreatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	items := make([]SaleItemModel, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemModel{
			ID:           item.ID,
			SaleID:       item.SaleID,
			ItemType:     string(item.ItemType),
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			Subtotal:     item.Subtotal,
		}
	}

	return &SaleModel{
		ID:            sale.ID,
		UserID:        sale.UserID,
		SaleDate:      sale.SaleDate,
		PaymentMethod: string(sale.PaymentMethod),
		TotalAmount:   sale.TotalAmount,
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
		Items:         items,
	}
}
