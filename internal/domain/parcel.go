package domain

import "time"

// Parcel Model
type Parcel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	UserID         uint      `gorm:"not null" json:"user_id"`                        // Owning user (sender), always set from the session
	RecipientID    uint      `json:"recipient_id"`                                   // Foreign key to Recipient
	Length         int       `json:"length"`                                         // Length in cm
	Width          int       `json:"width"`                                          // Width in cm
	Height         int       `json:"height"`                                         // Height in cm
	Weight         int       `json:"weight"`                                         // Weight in grams
	Cost           *float64  `json:"cost,omitempty"`                                 // Optional delivery cost
	Status         string    `gorm:"size:50" json:"status"`                          // Free-text status
	TrackingNumber string    `gorm:"size:32;uniqueIndex" json:"tracking_number"`     // Random 32-hex token generated at creation
	CreatedAt      time.Time `json:"created_at"`                                     // Set by the store
	UpdatedAt      time.Time `json:"updated_at"`                                     // Set by the store
}
