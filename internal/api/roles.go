package api

import (
	"net/http" // HTTP status codes

	"github.com/adammwaniki/SendIT/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RoleRequest carries the fields to create a role
type RoleRequest struct {
	Name string `json:"name" binding:"required"` // Unique role name
}

// ListRolesHandler returns all roles
func ListRolesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []domain.Role // Fetch all roles
		if err := db.Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list roles"})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

// CreateRoleHandler creates a role with a unique name
func CreateRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
			return
		}
		role := domain.Role{Name: req.Name}
		// The unique index rejects duplicate names
		if err := db.Create(&role).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Role already exists"})
			return
		}
		c.JSON(http.StatusCreated, role)
	}
}

// GetRoleHandler fetches a single role by id
func GetRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		var role domain.Role
		if err := db.First(&role, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		c.JSON(http.StatusOK, role)
	}
}

// UpdateRoleHandler renames a role
func UpdateRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		var role domain.Role
		if err := db.First(&role, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		var patch map[string]any // Raw partial-update payload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		updates := filterColumns(patch, "name") // Only the name is mutable
		if len(updates) > 0 {
			if err := db.Model(&role).Updates(updates).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Role already exists"})
				return
			}
		}
		c.JSON(http.StatusOK, role)
	}
}

// DeleteRoleHandler deletes a role by id
func DeleteRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		var role domain.Role
		if err := db.First(&role, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Role not found"})
			return
		}
		if err := db.Delete(&role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete role"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
