package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type ResetTokenHandler struct {
	tokenService *services.ResetTokenService
}

func NewResetTokenHandler(s *store.Store) *ResetTokenHandler {
	return &ResetTokenHandler{
		tokenService: services.NewResetTokenService(s),
	}
}

// List returns reset tokens, optionally narrowed to one token string
// GET /data/resetTokens?token=
func (h *ResetTokenHandler) List(c *gin.Context) {
	tokens, err := h.tokenService.List(c.Query("token"))
	if err != nil {
		response.ServerError(c, "Failed to read reset tokens")
		return
	}
	response.JSON(c, tokens)
}

// Create records a reset token
// POST /data/resetTokens
func (h *ResetTokenHandler) Create(c *gin.Context) {
	var req services.CreateResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	token, err := h.tokenService.Create(&req)
	if err != nil {
		response.ServerError(c, "Failed to create reset token")
		return
	}
	response.JSON(c, token)
}

// Delete removes a consumed reset token
// DELETE /data/resetTokens/:id
func (h *ResetTokenHandler) Delete(c *gin.Context) {
	if err := h.tokenService.Delete(pathID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Reset token not found")
			return
		}
		response.ServerError(c, "Failed to delete reset token")
		return
	}
	response.JSON(c, gin.H{})
}
