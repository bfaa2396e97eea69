package main

import (
	"github.com/projectpulse/projectpulse/internal/config"
	"github.com/projectpulse/projectpulse/internal/handlers"
	"github.com/projectpulse/projectpulse/internal/services"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/pkg/logger"
)

// appServices holds the initialized store, services and handlers.
type appServices struct {
	store          *store.Store
	cleanupService *services.CleanupService

	healthHandler     *handlers.HealthHandler
	projectHandler    *handlers.ProjectHandler
	proposalHandler   *handlers.ProposalHandler
	messageHandler    *handlers.MessageHandler
	taskHandler       *handlers.TaskHandler
	userHandler       *handlers.UserHandler
	resetTokenHandler *handlers.ResetTokenHandler
}

// bootstrap opens the document store, seeds the demo accounts and wires the
// handlers and background schedulers.
func bootstrap(cfg *config.Config) *appServices {
	s := store.Open(cfg.Store.Path)
	if err := s.Seed(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default users")
	}

	cleanup := services.NewCleanupService(s)
	cleanup.StartScheduler()

	return &appServices{
		store:             s,
		cleanupService:    cleanup,
		healthHandler:     handlers.NewHealthHandler(),
		projectHandler:    handlers.NewProjectHandler(s),
		proposalHandler:   handlers.NewProposalHandler(s),
		messageHandler:    handlers.NewMessageHandler(s),
		taskHandler:       handlers.NewTaskHandler(s),
		userHandler:       handlers.NewUserHandler(s),
		resetTokenHandler: handlers.NewResetTokenHandler(s),
	}
}
