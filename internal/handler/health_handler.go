package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labelaudit/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	creds port.CredentialSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(creds port.CredentialSource) *HealthHandler {
	return &HealthHandler{creds: creds}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.creds.APIKey() == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "inference credential not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
