package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/adammwaniki/SendIT/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Random tracking tokens
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ParcelRequest carries the fields to create a parcel. There is deliberately
// no user_id field: the owner always comes from the session.
type ParcelRequest struct {
	RecipientID uint     `json:"recipient_id" binding:"required"` // Target recipient
	Length      int      `json:"length"`                          // Length in cm
	Width       int      `json:"width"`                           // Width in cm
	Height      int      `json:"height"`                          // Height in cm
	Weight      int      `json:"weight"`                          // Weight in grams
	Cost        *float64 `json:"cost"`                            // Optional delivery cost
	Status      string   `json:"status"`                          // Free-text status
}

// parcelPatchColumns are the columns a PATCH may merge onto a parcel row.
// user_id and tracking_number are immutable.
var parcelPatchColumns = []string{"recipient_id", "length", "width", "height", "weight", "cost", "status"}

// newTrackingNumber returns a random 32-hex parcel token
func newTrackingNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ListParcelsHandler returns all parcels
func ListParcelsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcels []domain.Parcel
		if err := db.Find(&parcels).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list parcels"})
			return
		}
		c.JSON(http.StatusOK, parcels)
	}
}

// CreateParcelHandler creates a parcel owned by the authenticated user. Any
// user_id in the request body is ignored. Tracking-number generation retries
// on an index collision before giving up.
func CreateParcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c) // Owner comes from the session
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		var req ParcelRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient id is required"})
			return
		}
		// The recipient must exist before a parcel can reference it
		var recipient domain.Recipient
		if err := db.First(&recipient, req.RecipientID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
			return
		}
		parcel := domain.Parcel{
			UserID:      userID,          // Always the session identity
			RecipientID: req.RecipientID, // Target recipient
			Length:      req.Length,      // Dimensions
			Width:       req.Width,
			Height:      req.Height,
			Weight:      req.Weight,
			Cost:        req.Cost,   // Optional cost
			Status:      req.Status, // Free-text status
		}
		// The unique index backs the token; retry a few times on a collision
		var err error
		for attempt := 0; attempt < 3; attempt++ {
			parcel.TrackingNumber = newTrackingNumber()
			if err = db.Create(&parcel).Error; err == nil {
				break
			}
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,          // Owner
				"recipient_id": req.RecipientID, // Target recipient
				"error":        err.Error(),     // Error message
			}).Error("Failed to create parcel") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create parcel"})
			return
		}
		// Log the new parcel for external tracking
		logrus.WithFields(logrus.Fields{
			"parcel_id":       parcel.ID,             // New parcel ID
			"user_id":         userID,                // Owner
			"tracking_number": parcel.TrackingNumber, // Public token
		}).Info("Parcel created")
		c.JSON(http.StatusCreated, parcel)
	}
}

// GetParcelHandler fetches a single parcel by id
func GetParcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		var parcel domain.Parcel
		if err := db.First(&parcel, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		c.JSON(http.StatusOK, parcel)
	}
}

// UpdateParcelHandler merges the provided fields onto a parcel row. The owner
// and the tracking number never change after creation.
func UpdateParcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		var parcel domain.Parcel
		if err := db.First(&parcel, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		var patch map[string]any // Raw partial-update payload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		updates := filterColumns(patch, parcelPatchColumns...)
		if len(updates) > 0 {
			if err := db.Model(&parcel).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update parcel"})
				return
			}
		}
		c.JSON(http.StatusOK, parcel)
	}
}

// DeleteParcelHandler deletes a parcel by id
func DeleteParcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		var parcel domain.Parcel
		if err := db.First(&parcel, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		if err := db.Delete(&parcel).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete parcel"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
