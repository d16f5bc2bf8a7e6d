package api

import (
	"net/http" // HTTP status codes

	"github.com/adammwaniki/SendIT/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RecipientRequest carries the fields to create a recipient, optionally with
// nested delivery addresses created in the same call
type RecipientRequest struct {
	RecipientFullName string                    `json:"recipient_full_name" binding:"required"` // Full name
	PhoneNumber       string                    `json:"phone_number"`                           // Phone number
	DeliveryAddresses []domain.RecipientAddress `json:"delivery_addresses"`                     // Optional nested addresses
}

// ListRecipientsHandler returns all recipients with their delivery addresses
func ListRecipientsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var recipients []domain.Recipient
		if err := db.Preload("DeliveryAddresses").Find(&recipients).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list recipients"})
			return
		}
		c.JSON(http.StatusOK, recipients)
	}
}

// CreateRecipientHandler creates a recipient, persisting any nested delivery
// addresses through the association table in the same write
func CreateRecipientHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecipientRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient full name is required"})
			return
		}
		// Required fields on each nested address
		for _, addr := range req.DeliveryAddresses {
			if addr.City == "" || addr.Country == "" {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Address city and country are required"})
				return
			}
		}
		recipient := domain.Recipient{
			RecipientFullName: req.RecipientFullName, // Full name
			PhoneNumber:       req.PhoneNumber,       // Phone number
			DeliveryAddresses: req.DeliveryAddresses, // GORM writes the association rows
		}
		if err := db.Create(&recipient).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create recipient"})
			return
		}
		c.JSON(http.StatusCreated, recipient)
	}
}

// GetRecipientHandler fetches a single recipient by id
func GetRecipientHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		var recipient domain.Recipient
		if err := db.Preload("DeliveryAddresses").Preload("Parcels").First(&recipient, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		c.JSON(http.StatusOK, recipient)
	}
}

// UpdateRecipientHandler merges the provided fields onto a recipient row
func UpdateRecipientHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		var recipient domain.Recipient
		if err := db.First(&recipient, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		var patch map[string]any // Raw partial-update payload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		updates := filterColumns(patch, "recipient_full_name", "phone_number")
		if len(updates) > 0 {
			if err := db.Model(&recipient).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update recipient"})
				return
			}
		}
		c.JSON(http.StatusOK, recipient)
	}
}

// DeleteRecipientHandler deletes a recipient by id
func DeleteRecipientHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		var recipient domain.Recipient
		if err := db.First(&recipient, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		if err := db.Delete(&recipient).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete recipient"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
