package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions

	"github.com/adammwaniki/SendIT/internal/domain"  // Importing domain models
	"github.com/adammwaniki/SendIT/internal/session" // Session manager

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest carries the fields required to create an account
type SignupRequest struct {
	FirstName   string `json:"first_name"`   // First name (required)
	LastName    string `json:"last_name"`    // Last name (required)
	Email       string `json:"email"`        // Email (required, shape-validated)
	Password    string `json:"password"`     // Raw password (required, min 6 chars)
	PhoneNumber string `json:"phone_number"` // Optional phone number
}

// LoginRequest carries the credentials for a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// emailPattern is the simple email-shape check applied at signup
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// validateSignup checks the signup payload and returns a message on failure
func validateSignup(req *SignupRequest) (string, bool) {
	// All four core fields are required
	if req.FirstName == "" {
		return "First name is required", false
	}
	if req.LastName == "" {
		return "Last name is required", false
	}
	if req.Email == "" {
		return "Email is required", false
	}
	if req.Password == "" {
		return "Password is required", false
	}
	// Shape check only; the store's unique index guards duplicates
	if !emailPattern.MatchString(req.Email) {
		return "Invalid email format", false
	}
	// Minimum raw length, checked before hashing
	if len(req.Password) < 6 {
		return "Password should be more than 6 characters", false
	}
	return "", true
}

// createUser validates, hashes and persists a new account. The application
// level duplicate check is a fast path only, the unique index is the
// authoritative guard against concurrent signups.
func createUser(db *gorm.DB, req *SignupRequest) (*domain.User, int, string) {
	// Validate payload
	if msg, ok := validateSignup(req); !ok {
		return nil, http.StatusBadRequest, msg
	}
	// Fast-path duplicate check for a friendly message
	var count int64
	if err := db.Model(&domain.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, http.StatusInternalServerError, "Failed to create user"
	}
	if count > 0 {
		return nil, http.StatusBadRequest, "Email is already in use"
	}
	// Hash the password and create the user
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, "Failed to hash password"
	}
	user := domain.User{
		FirstName:   req.FirstName,   // First name
		LastName:    req.LastName,    // Last name
		Email:       req.Email,       // Email as given, no normalization
		Password:    string(hash),    // Bcrypt hash
		PhoneNumber: req.PhoneNumber, // Optional phone number
	}
	// Attempt to create the user in the database
	if err := db.Create(&user).Error; err != nil {
		// A lost uniqueness race lands here via the unique index
		return nil, http.StatusBadRequest, "Email is already in use"
	}
	return &user, http.StatusCreated, ""
}

// SignupHandler registers a new account and establishes its session
func SignupHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, status, msg := createUser(db, &req)
		if user == nil {
			c.JSON(status, gin.H{"message": msg})
			return
		}
		// Bind a fresh session to the new identity
		if err := mgr.Establish(c, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // New user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to establish session") // Log session failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to establish session"})
			return
		}
		// Return the serialized new user
		c.JSON(http.StatusCreated, user)
	}
}

// LoginHandler authenticates a user and establishes a session
func LoginHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return unauthorized without leaking which field is off
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Establish the session
		if err := mgr.Establish(c, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to establish session") // Log session failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to establish session"})
			return
		}
		// Return the serialized user
		c.JSON(http.StatusOK, user)
	}
}

// LogoutHandler clears the caller's session. Always 204, logged in or not.
func LogoutHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr.Clear(c)                   // Idempotent teardown
		c.Status(http.StatusNoContent) // 204 regardless of prior state
	}
}

// CheckSessionHandler is the soft login probe: 200 with the current user when
// a session resolves, empty 204 otherwise. Never a 401.
func CheckSessionHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mgr.Identify(c) // Resolve the session cookie
		if !ok {
			c.Status(http.StatusNoContent) // Not logged in is a normal outcome
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			c.Status(http.StatusNoContent) // User gone after login
			return
		}
		c.JSON(http.StatusOK, user) // Return the serialized current identity
	}
}
