package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id route param. Returns 0 when it is not numeric, which
// handlers treat as "not found" since no stored id is ever 0.
func pathID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryID parses an optional numeric query parameter; absent or malformed
// values read as 0 (no filter), matching the forgiving document-server
// behavior the clients grew up against.
func queryID(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
