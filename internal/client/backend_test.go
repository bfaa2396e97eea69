package client

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/projectpulse/internal/handlers"
	"github.com/projectpulse/projectpulse/internal/store"
)

// newBackend spins up the real server stack against a temp document file so
// the stores are exercised end to end.
func newBackend(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.Open(filepath.Join(t.TempDir(), "db.json"))
	if err := s.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	health := handlers.NewHealthHandler()
	projects := handlers.NewProjectHandler(s)
	proposals := handlers.NewProposalHandler(s)
	messages := handlers.NewMessageHandler(s)
	tasks := handlers.NewTaskHandler(s)
	users := handlers.NewUserHandler(s)
	resetTokens := handlers.NewResetTokenHandler(s)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health-check", health.Check)
		api.HEAD("/health-check", health.Check)
		api.GET("/projects", projects.List)
		api.POST("/projects", projects.Create)
		api.GET("/projects/:id", projects.GetByID)
		api.PUT("/projects/:id", projects.Update)
		api.GET("/proposals", proposals.List)
		api.POST("/proposals", proposals.Create)
		api.GET("/proposals/:id", proposals.GetByID)
		api.PUT("/proposals/:id", proposals.Update)
		api.GET("/messages", messages.List)
		api.POST("/messages", messages.Create)
		api.GET("/users", users.List)
	}
	data := r.Group("/data")
	{
		data.GET("/users", users.ListRaw)
		data.HEAD("/users", users.ListRaw)
		data.POST("/users", users.Create)
		data.GET("/users/:id", users.GetByIDRaw)
		data.PUT("/users/:id", users.Update)
		data.GET("/resetTokens", resetTokens.List)
		data.POST("/resetTokens", resetTokens.Create)
		data.DELETE("/resetTokens/:id", resetTokens.Delete)
		data.GET("/tasks", tasks.List)
		data.HEAD("/tasks", tasks.List)
		data.POST("/tasks", tasks.Create)
		data.GET("/tasks/:id", tasks.GetByID)
		data.PUT("/tasks/:id", tasks.Update)
		data.DELETE("/tasks/:id", tasks.Delete)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, s
}

// onlineConfig points a client at a live test backend.
func onlineConfig(t *testing.T, srv *httptest.Server) Config {
	t.Helper()
	return Config{
		APIBaseURL:   srv.URL + "/api",
		DataBaseURL:  srv.URL + "/data",
		ProbeTimeout: 2 * time.Second,
		SessionFile:  filepath.Join(t.TempDir(), "session.json"),
	}
}

// offlineConfig points a client at an unroutable backend so every probe and
// call fails fast.
func offlineConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		APIBaseURL:   "http://127.0.0.1:1/api",
		DataBaseURL:  "http://127.0.0.1:1/data",
		ProbeTimeout: 200 * time.Millisecond,
		SessionFile:  filepath.Join(t.TempDir(), "session.json"),
	}
}
