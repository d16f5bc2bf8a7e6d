package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
)

// IndexHandler serves the public project banner
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SendIT parcel delivery API"})
	}
}

// currentUserID returns the authenticated user id injected by the route gate
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID") // Set by the gate on protected routes
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// filterColumns keeps only the allowed column names from a raw patch payload.
// Provided fields merge verbatim onto the record, anything else is dropped.
func filterColumns(patch map[string]any, allowed ...string) map[string]any {
	out := make(map[string]any, len(patch))
	for _, col := range allowed {
		if v, ok := patch[col]; ok {
			out[col] = v
		}
	}
	return out
}
