// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	ExpenseDate   time.Time
	Description   string
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Category      string
	Notes         string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates and persists the expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	newExpense := entity.NewExpense(
		input.UserID,
		input.ExpenseDate,
		input.Description,
		input.Amount,
		input.PaymentMethod,
		input.Category,
		input.Notes,
	)

	if err := uc.expenseRepo.Create(ctx, newExpense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: newExpense}, nil
}

// validateInput validates the input parameters against the catalogs.
func (uc *CreateExpenseUseCase) validateInput(input CreateExpenseInput) error {
	if input.ExpenseDate.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense_date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	if strings.TrimSpace(input.Description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyDescription,
			"description is required",
			domainerror.ErrEmptyDescription,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.IsValidPaymentMethod(input.PaymentMethod) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpensePaymentMode,
			"payment method must be 'Cash' or 'Bank'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if !entity.IsValidExpenseCategory(input.Category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category %q is not in the catalog", input.Category),
			domainerror.ErrInvalidCategory,
		)
	}

	return nil
}
