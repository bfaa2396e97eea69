package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check answers GET and HEAD /api/health-check. The web clients probe this
// route with HEAD and require a JSON content type before trusting the
// backend, so the header is set explicitly even when no body goes out.
func (h *HealthHandler) Check(c *gin.Context) {
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Status(http.StatusOK)
		return
	}
	response.JSON(c, gin.H{"status": "ok"})
}
