package api

import (
	"net/http" // HTTP status codes

	"github.com/adammwaniki/SendIT/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// userPatchColumns are the columns a PATCH may merge onto a user row
var userPatchColumns = []string{"first_name", "last_name", "email", "password", "phone_number", "billing_address_id"}

// ListUsersHandler returns all users with their roles and billing address
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User // Fetch all users
		if err := db.Preload("Roles").Preload("BillingAddress").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list users"})
			return
		}
		c.JSON(http.StatusOK, users) // Return the serialized list
	}
}

// CreateUserHandler creates a user directly. Same validation as signup but no
// session is established for the new account.
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, status, msg := createUser(db, &req) // Shared validate-hash-persist path
		if user == nil {
			c.JSON(status, gin.H{"message": msg})
			return
		}
		c.JSON(http.StatusCreated, user) // Return the serialized new user
	}
}

// GetUserHandler fetches a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c) // Parse the :id parameter
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		var user domain.User // Fetch user with associations
		if err := db.Preload("Roles").Preload("BillingAddress").Preload("Addresses").Preload("Parcels").First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the serialized user
	}
}

// UpdateUserHandler merges the provided fields onto a user row. A provided
// password is length-checked and re-hashed before the merge. The gate only
// authenticates: any logged-in user may patch any user row (see DESIGN.md).
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c) // Parse the :id parameter
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		var user domain.User // The row must exist before merging
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		var patch map[string]any // Raw partial-update payload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		updates := filterColumns(patch, userPatchColumns...) // Drop unknown columns
		// Re-hash a provided password before it touches the store
		if raw, ok := updates["password"]; ok {
			pw, ok := raw.(string)
			if !ok || len(pw) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Password should be more than 6 characters"})
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
				return
			}
			updates["password"] = string(hash)
		}
		// Merge the surviving fields verbatim
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				// A changed email can lose to the unique index
				if _, emailChanged := updates["email"]; emailChanged {
					c.JSON(http.StatusBadRequest, gin.H{"message": "Email is already in use"})
					return
				}
				logrus.WithFields(logrus.Fields{
					"user_id": id,          // Target user ID
					"error":   err.Error(), // Error message
				}).Error("Failed to update user") // Log update failure
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
				return
			}
		}
		c.JSON(http.StatusOK, user) // Return the merged record
	}
}

// DeleteUserHandler deletes a user by id. Dependent rows are left orphaned,
// there is no cascade (see DESIGN.md).
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c) // Parse the :id parameter
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		var user domain.User // The row must exist for a 204
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": id, // Deleted user ID
		}).Info("User deleted") // Log the deletion
		c.Status(http.StatusNoContent) // 204 on success
	}
}
