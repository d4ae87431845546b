// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/application/usecase/expense"
	"github.com/cakebook/backend/internal/application/usecase/throttle"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
	"github.com/cakebook/backend/internal/integration/entrypoint/dto"
	"github.com/cakebook/backend/internal/integration/entrypoint/middleware"
	"github.com/cakebook/backend/internal/integration/persistence"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase

	analyticsGuard *throttle.Guard
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	analyticsGuard *throttle.Guard,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		analyticsGuard: analyticsGuard,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ListExpensesInput{
		UserID: userID,
		Filters: adapter.ExpenseFilters{
			Month:         ctx.Query("month"),
			Year:          ctx.Query("year"),
			Date:          ctx.Query("date"),
			PaymentMethod: entity.PaymentMethod(ctx.Query("paymentMethod")),
			Category:      ctx.Query("category"),
		},
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses, output.Advisory))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyDescription),
		})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:        userID,
		ExpenseDate:   expenseDate,
		Description:   req.Description,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Category:      req.Category,
		Notes:         req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// A new expense changes the numbers; drop the analytics cooldown so
	// the next dashboard read recomputes immediately.
	c.analyticsGuard.Reset(userID)

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	if errors.Is(err, persistence.ErrDatastoreNotConfigured) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Datastore is not configured",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidExpensePaymentMode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
