package session

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carried by the signed session cookie. The cookie only ever holds a
// session id; the user id lives server-side in the session store.
type Claims struct {
	SessionID            string `json:"sid"` // Opaque session identifier
	jwt.RegisteredClaims        // Standard JWT claims
}

// signToken creates a signed cookie token wrapping a session id
func signToken(sessionID, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		SessionID: sessionID, // Custom claim for the session id
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Token expires with the session
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// parseToken validates a cookie token and returns the session id it wraps
func parseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return "", err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims.SessionID, nil // Return the session id if valid
	}
	// Return error if token is invalid
	return "", jwt.ErrSignatureInvalid
}
