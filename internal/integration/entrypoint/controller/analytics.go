// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cakebook/backend/internal/application/usecase/analytics"
	domainerror "github.com/cakebook/backend/internal/domain/error"
	"github.com/cakebook/backend/internal/integration/entrypoint/dto"
	"github.com/cakebook/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the analytics endpoint.
type AnalyticsController struct {
	getUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /analytics requests. The response always carries a
// snapshot: a throttled or rate-limited request serves the previous one.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := analytics.GetAnalyticsInput{UserID: userID}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics",
			Code:  string(domainerror.ErrCodeAnalyticsFetchFailed),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
