package api

import (
	"net/http" // HTTP status codes

	"github.com/adammwaniki/SendIT/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// BillingAddressRequest carries the fields to create a billing address
type BillingAddressRequest struct {
	Street    string   `json:"street"`                     // Street
	City      string   `json:"city" binding:"required"`    // City (required)
	State     string   `json:"state"`                      // State
	ZipCode   string   `json:"zip_code"`                   // Zip code
	Country   string   `json:"country" binding:"required"` // Country (required)
	Latitude  *float64 `json:"latitude"`                   // Optional latitude
	Longitude *float64 `json:"longitude"`                  // Optional longitude
}

// billingPatchColumns are the columns a PATCH may merge onto a billing address
var billingPatchColumns = []string{"street", "city", "state", "zip_code", "country", "latitude", "longitude"}

// ListBillingAddressesHandler returns all billing addresses
func ListBillingAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []domain.BillingAddress
		if err := db.Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list billing addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// CreateBillingAddressHandler creates a billing address and links it to the
// authenticated user in one transaction. The owning user always comes from
// the session, never from the body.
func CreateBillingAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c) // Owner comes from the session
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		var req BillingAddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "City and country are required"})
			return
		}
		address := domain.BillingAddress{
			Street:    req.Street,    // Street
			City:      req.City,      // City
			State:     req.State,     // State
			ZipCode:   req.ZipCode,   // Zip code
			Country:   req.Country,   // Country
			Latitude:  req.Latitude,  // Optional latitude
			Longitude: req.Longitude, // Optional longitude
		}
		// Create the row and point the user at it atomically
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&address).Error; err != nil {
				return err // Return error to rollback
			}
			// Link to the session user, replacing any previous billing address
			if err := tx.Model(&domain.User{}).Where("id = ?", userID).Update("billing_address_id", address.ID).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owner
				"error":   err.Error(), // Error message
			}).Error("Failed to create billing address") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create billing address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// GetBillingAddressHandler fetches a single billing address by id
func GetBillingAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		var address domain.BillingAddress
		if err := db.First(&address, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// UpdateBillingAddressHandler merges the provided fields onto a billing
// address row
func UpdateBillingAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		var address domain.BillingAddress
		if err := db.First(&address, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		var patch map[string]any // Raw partial-update payload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		updates := filterColumns(patch, billingPatchColumns...)
		if len(updates) > 0 {
			if err := db.Model(&address).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update billing address"})
				return
			}
		}
		c.JSON(http.StatusOK, address)
	}
}

// DeleteBillingAddressHandler deletes a billing address by id, unlinking any
// user that referenced it first so the foreign key cannot block the delete
func DeleteBillingAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		var address domain.BillingAddress
		if err := db.First(&address, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Billing address not found"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			// Clear back-references before removing the row
			if err := tx.Model(&domain.User{}).Where("billing_address_id = ?", id).Update("billing_address_id", nil).Error; err != nil {
				return err // Return error to rollback
			}
			if err := tx.Delete(&address).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete billing address"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
