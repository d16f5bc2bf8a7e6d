package session

import (
	"net/http" // Cookie attributes
	"strings"  // String manipulation
	"time"     // Session lifetime

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Random session ids
)

// CookieName is the name of the session cookie
const CookieName = "sendit_session"

// TTL is the session lifetime, shared by the cookie and the store entry
const TTL = 24 * time.Hour

// Manager issues, resolves and clears cookie-backed sessions
type Manager struct {
	store  Store  // Server-side session store
	secret string // Cookie signing secret
	secure bool   // Mark cookies Secure in production
}

// NewManager creates a session manager over the given store
func NewManager(store Store, secret string, secure bool) *Manager {
	return &Manager{store: store, secret: secret, secure: secure}
}

// Establish creates a new session for the user and sets the signed cookie
func (m *Manager) Establish(c *gin.Context, userID uint) error {
	sid := strings.ReplaceAll(uuid.NewString(), "-", "") // 32-hex session id
	// Persist the session server-side first
	if err := m.store.Save(c.Request.Context(), sid, userID, TTL); err != nil {
		return err
	}
	// Sign the cookie token wrapping the session id
	token, err := signToken(sid, m.secret, TTL)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)                               // Lax is enough for a first-party API
	c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", m.secure, true) // HttpOnly session cookie
	return nil
}

// Identify resolves the caller's user id from the session cookie. Absence of
// a session is a normal outcome: no error is ever surfaced.
func (m *Manager) Identify(c *gin.Context) (uint, bool) {
	token, err := c.Cookie(CookieName) // Read the session cookie
	if err != nil || token == "" {
		return 0, false // No cookie, no identity
	}
	sid, err := parseToken(token, m.secret) // Validate the signature
	if err != nil {
		return 0, false // Tampered or expired cookie
	}
	userID, ok, err := m.store.Lookup(c.Request.Context(), sid) // Resolve server-side
	if err != nil || !ok {
		return 0, false // Store failure or logged-out session
	}
	return userID, true
}

// Clear ends the caller's session, if any, and expires the cookie. Idempotent.
func (m *Manager) Clear(c *gin.Context) {
	// Best-effort server-side deletion; a missing or bad cookie is fine
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		if sid, err := parseToken(token, m.secret); err == nil {
			_ = m.store.Delete(c.Request.Context(), sid)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true) // Expire the cookie
}
