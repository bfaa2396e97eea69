package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
}

func NewProposalHandler(s *store.Store) *ProposalHandler {
	return &ProposalHandler{
		proposalService: services.NewProposalService(s),
	}
}

// List returns proposals, optionally filtered by project
// GET /api/proposals?projectId=
func (h *ProposalHandler) List(c *gin.Context) {
	proposals, err := h.proposalService.List(queryID(c, "projectId"))
	if err != nil {
		response.ServerError(c, "Failed to read proposals")
		return
	}
	response.JSON(c, proposals)
}

// GetByID returns a proposal by ID
// GET /api/proposals/:id
func (h *ProposalHandler) GetByID(c *gin.Context) {
	proposal, err := h.proposalService.GetByID(pathID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Proposal not found")
			return
		}
		response.ServerError(c, "Failed to read proposals")
		return
	}
	response.JSON(c, proposal)
}

// Create submits a new proposal
// POST /api/proposals
func (h *ProposalHandler) Create(c *gin.Context) {
	var req services.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	proposal, err := h.proposalService.Create(&req)
	if err != nil {
		response.ServerError(c, "Failed to create proposal")
		return
	}
	response.JSON(c, proposal)
}

// Update merges the request body over the stored proposal. A body that sets
// status=accepted also updates the parent project in the same write.
// PUT /api/proposals/:id
func (h *ProposalHandler) Update(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Merge(pathID(c), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Proposal not found")
			return
		}
		response.ServerError(c, "Failed to update proposal")
		return
	}
	response.JSON(c, proposal)
}
