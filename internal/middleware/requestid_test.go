package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request id header")
	}
}

func TestRequestID_HonorsCallerID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "caller-supplied-id")
	router.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "caller-supplied-id" {
		t.Errorf("request id = %q, expected caller-supplied-id", got)
	}
}
