// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness and datastore reachability.
type HealthController struct {
	databaseUp func() bool
}

// NewHealthController creates a new health controller instance.
// databaseUp may report false permanently when the server runs without
// a configured datastore.
func NewHealthController(databaseUp func() bool) *HealthController {
	return &HealthController{databaseUp: databaseUp}
}

// Check handles GET /health requests. The endpoint is unauthenticated
// and always answers 200; the body tells whether the datastore is
// reachable.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.databaseUp != nil && h.databaseUp() {
		database = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
