package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(s *store.Store) *MessageHandler {
	return &MessageHandler{
		messageService: services.NewMessageService(s),
	}
}

// List returns messages, optionally filtered by project
// GET /api/messages?projectId=
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.List(queryID(c, "projectId"))
	if err != nil {
		response.ServerError(c, "Failed to read messages")
		return
	}
	response.JSON(c, messages)
}

// Create sends a message, stamping the sender's name and role
// POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	message, err := h.messageService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Sender not found")
			return
		}
		response.ServerError(c, "Failed to create message")
		return
	}
	response.JSON(c, message)
}
