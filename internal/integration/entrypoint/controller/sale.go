// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/application/usecase/sale"
	"github.com/cakebook/backend/internal/application/usecase/throttle"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
	"github.com/cakebook/backend/internal/integration/entrypoint/dto"
	"github.com/cakebook/backend/internal/integration/entrypoint/middleware"
	"github.com/cakebook/backend/internal/integration/persistence"
)

// SaleController handles sale endpoints.
type SaleController struct {
	createUseCase *sale.CreateSaleUseCase
	listUseCase   *sale.ListSalesUseCase

	// analyticsGuard is reset on writes so the next analytics read
	// recomputes instead of serving the pre-write snapshot.
	analyticsGuard *throttle.Guard
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *sale.CreateSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	analyticsGuard *throttle.Guard,
) *SaleController {
	return &SaleController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		analyticsGuard: analyticsGuard,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := sale.ListSalesInput{
		UserID: userID,
		Filters: adapter.SaleFilters{
			Month:         ctx.Query("month"),
			Year:          ctx.Query("year"),
			Date:          ctx.Query("date"),
			PaymentMethod: entity.PaymentMethod(ctx.Query("paymentMethod")),
			Flavor:        ctx.Query("flavor"),
			ItemType:      entity.ItemType(ctx.Query("itemType")),
		},
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales, output.Advisory))
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeSaleNoItems),
		})
		return
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return
	}

	items := make([]sale.CreateSaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, sale.CreateSaleItemInput{
			ItemType:     entity.ItemType(item.ItemType),
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: decimal.NewFromFloat(item.PricePerItem),
		})
	}

	input := sale.CreateSaleInput{
		UserID:        userID,
		SaleDate:      saleDate,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		Items:         items,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	// A new sale changes the numbers; drop the analytics cooldown so the
	// next dashboard read recomputes immediately.
	c.analyticsGuard.Reset(userID)

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		statusCode := c.getStatusCodeForSaleError(saleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
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

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNoItems,
		domainerror.ErrCodeInvalidItemType,
		domainerror.ErrCodeInvalidFlavor,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidSaleDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
