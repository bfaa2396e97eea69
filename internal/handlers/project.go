package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(s),
	}
}

// List returns projects, optionally filtered by customer
// GET /api/projects?customerId=
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(queryID(c, "customerId"))
	if err != nil {
		response.ServerError(c, "Failed to read projects")
		return
	}
	response.JSON(c, projects)
}

// GetByID returns a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(pathID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.ServerError(c, "Failed to read projects")
		return
	}
	response.JSON(c, project)
}

// Create submits a new project request
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		response.ServerError(c, "Failed to create project")
		return
	}
	response.JSON(c, project)
}

// Update merges the request body over the stored project
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Merge(pathID(c), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.ServerError(c, "Failed to update project")
		return
	}
	response.JSON(c, project)
}
