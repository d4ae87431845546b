// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(10);not null;index"`
	Category      string          `gorm:"type:varchar(50);not null;index"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		ExpenseDate:   m.ExpenseDate,
		Description:   m.Description,
		Amount:        m.Amount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Category:      m.Category,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		ExpenseDate:   expense.ExpenseDate,
		Description:   expense.Description,
		Amount:        expense.Amount,
		PaymentMethod: string(expense.PaymentMethod),
		Category:      expense.Category,
		Notes:         expense.Notes,
		CreatedAt:     expense.CreatedAt,
	}
}
