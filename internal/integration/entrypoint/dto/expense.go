// Package dto defines request and response types for the API endpoints.
package dto

import (
	"time"

	"github.com/cakebook/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	ExpenseDate   string  `json:"expenseDate" binding:"required"`
	Description   string  `json:"description" binding:"required,min=1,max=255"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=Cash Bank"`
	Category      string  `json:"category" binding:"required"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	ExpenseDate   string    `json:"expenseDate"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Advisory string            `json:"advisory,omitempty"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID.String(),
		ExpenseDate:   expense.ExpenseDate.Format("2006-01-02"),
		Description:   expense.Description,
		Amount:        expense.Amount.String(),
		PaymentMethod: string(expense.PaymentMethod),
		Category:      expense.Category,
		Notes:         expense.Notes,
		CreatedAt:     expense.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []*entity.Expense, advisory string) ExpenseListResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, ToExpenseResponse(expense))
	}
	return ExpenseListResponse{
		Expenses: responses,
		Advisory: advisory,
	}
}
