package middleware

import (
	"net/http" // HTTP status codes

	"github.com/adammwaniki/SendIT/internal/domain"  // Importing domain models
	"github.com/adammwaniki/SendIT/internal/session" // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// publicEndpoints is the fixed allow-list of paths reachable without a
// session. Adding a new public endpoint means adding it here.
var publicEndpoints = map[string]bool{
	"/":              true, // Index banner
	"/signup":        true, // Account creation
	"/login":         true, // Credential exchange
	"/logout":        true, // Idempotent session teardown
	"/check_session": true, // Soft login probe
}

// SessionGate intercepts every request before dispatch. Non-whitelisted paths
// require a session that resolves to a live user row; everything else passes
// through untouched. Identity is resolved once here and threaded through the
// context, handlers never consult the cookie themselves.
func SessionGate(mgr *session.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Public endpoints skip authentication entirely
		if publicEndpoints[c.Request.URL.Path] {
			c.Next()
			return
		}
		userID, ok := mgr.Identify(c) // Resolve the session cookie
		if !ok {
			// No session: short-circuit before the handler runs
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		var user domain.User // The session must still resolve to a user row
		if err := db.First(&user, userID).Error; err != nil {
			// User deleted after login: treat as unauthenticated
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		c.Set("userID", user.ID)    // Store userID in context
		c.Set("currentUser", user)  // Store the resolved user in context
		c.Next()                    // Proceed to the next handler
	}
}
