package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/response"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(s),
	}
}

// List returns users with passwords stripped
// GET /api/users?role=&ids=1,2,3
func (h *UserHandler) List(c *gin.Context) {
	filter := services.UserFilter{Role: c.Query("role")}
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
				filter.IDs = append(filter.IDs, id)
			}
		}
	}

	users, err := h.userService.List(filter)
	if err != nil {
		response.ServerError(c, "Failed to read users")
		return
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.WithoutPassword())
	}
	response.JSON(c, out)
}

// ListRaw returns full user records, passwords included. Served on the raw
// data routes only; the demo login fetches by email and compares the
// cleartext password client-side.
// GET|HEAD /data/users?email=
func (h *UserHandler) ListRaw(c *gin.Context) {
	users, err := h.userService.List(services.UserFilter{Email: c.Query("email")})
	if err != nil {
		response.ServerError(c, "Failed to read users")
		return
	}
	response.JSON(c, users)
}

// GetByIDRaw returns one full user record
// GET /data/users/:id
func (h *UserHandler) GetByIDRaw(c *gin.Context) {
	user, err := h.userService.GetByID(pathID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ServerError(c, "Failed to read users")
		return
	}
	response.JSON(c, user)
}

// Create registers a user (the signup flow posts here)
// POST /data/users
func (h *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		response.ServerError(c, "Failed to create user")
		return
	}
	response.JSON(c, user)
}

// Update merges the request body over the stored user (password reset PUTs
// the whole record back)
// PUT /data/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Merge(pathID(c), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ServerError(c, "Failed to update user")
		return
	}
	response.JSON(c, user)
}
