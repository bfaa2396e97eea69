package main

import (
	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/middleware"
	"github.com/projectpulse/projectpulse/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the raw data routes: they expose full user records
	// (including the demo passwords) for the login flow, so abusive polling
	// gets cut off.
	dataLimiter := middleware.NewRateLimiter(10, 20)

	// Application API
	api := r.Group("/api")
	{
		api.GET("/health-check", svc.healthHandler.Check)
		api.HEAD("/health-check", svc.healthHandler.Check)

		api.GET("/projects", svc.projectHandler.List)
		api.POST("/projects", svc.projectHandler.Create)
		api.GET("/projects/:id", svc.projectHandler.GetByID)
		api.PUT("/projects/:id", svc.projectHandler.Update)

		api.GET("/proposals", svc.proposalHandler.List)
		api.POST("/proposals", svc.proposalHandler.Create)
		api.GET("/proposals/:id", svc.proposalHandler.GetByID)
		api.PUT("/proposals/:id", svc.proposalHandler.Update)

		api.GET("/messages", svc.messageHandler.List)
		api.POST("/messages", svc.messageHandler.Create)

		api.GET("/tasks", svc.taskHandler.List)
		api.POST("/tasks", svc.taskHandler.Create)
		api.GET("/tasks/:id", svc.taskHandler.GetByID)
		api.PUT("/tasks/:id", svc.taskHandler.Update)
		api.DELETE("/tasks/:id", svc.taskHandler.Delete)

		api.GET("/users", svc.userHandler.List)
	}

	// Raw document routes: same collections, no password stripping. The
	// session and task stores target these directly.
	data := r.Group("/data", dataLimiter.Middleware())
	{
		data.GET("/users", svc.userHandler.ListRaw)
		data.HEAD("/users", svc.userHandler.ListRaw)
		data.POST("/users", svc.userHandler.Create)
		data.GET("/users/:id", svc.userHandler.GetByIDRaw)
		data.PUT("/users/:id", svc.userHandler.Update)

		data.GET("/resetTokens", svc.resetTokenHandler.List)
		data.POST("/resetTokens", svc.resetTokenHandler.Create)
		data.DELETE("/resetTokens/:id", svc.resetTokenHandler.Delete)

		data.GET("/tasks", svc.taskHandler.List)
		data.HEAD("/tasks", svc.taskHandler.List)
		data.POST("/tasks", svc.taskHandler.Create)
		data.GET("/tasks/:id", svc.taskHandler.GetByID)
		data.PUT("/tasks/:id", svc.taskHandler.Update)
		data.DELETE("/tasks/:id", svc.taskHandler.Delete)
	}
}
