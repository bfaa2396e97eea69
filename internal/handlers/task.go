package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(s),
	}
}

// List returns tasks, optionally filtered by project and assignee
// GET /api/tasks?projectId=&assignedTo=
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(services.TaskFilter{
		ProjectID:  queryID(c, "projectId"),
		AssignedTo: queryID(c, "assignedTo"),
	})
	if err != nil {
		response.ServerError(c, "Failed to read tasks")
		return
	}
	response.JSON(c, tasks)
}

// GetByID returns a task by ID
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskService.GetByID(pathID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.ServerError(c, "Failed to read tasks")
		return
	}
	response.JSON(c, task)
}

// Create adds a task
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		response.ServerError(c, "Failed to create task")
		return
	}
	response.JSON(c, task)
}

// Update merges the request body over the stored task
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Merge(pathID(c), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.ServerError(c, "Failed to update task")
		return
	}
	response.JSON(c, task)
}

// Delete removes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(pathID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.ServerError(c, "Failed to delete task")
		return
	}
	response.JSON(c, gin.H{"success": true})
}
