package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks the flat-file document server's dialect: success bodies are
// the raw entity or array, failures are {"error": "..."} with an appropriate
// status. Clients branch on status only and read the error string for
// display; there are no structured error codes.

// JSON sends data as-is with a 200 status.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Errorf sends {"error": msg} with the given status.
func Errorf(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Errorf(c, http.StatusBadRequest, msg)
}

func NotFound(c *gin.Context, msg string) {
	Errorf(c, http.StatusNotFound, msg)
}

func ServerError(c *gin.Context, msg string) {
	Errorf(c, http.StatusInternalServerError, msg)
}
