package domain

import "time"

// Recipient Model
type Recipient struct {
	ID                uint               `gorm:"primaryKey" json:"id"`                       // Primary key
	RecipientFullName string             `gorm:"size:130" json:"recipient_full_name"`        // Full name
	PhoneNumber       string             `gorm:"size:50" json:"phone_number"`                // Phone number
	Parcels           []Parcel           `json:"parcels,omitempty"`                          // Parcels addressed to this recipient
	DeliveryAddresses []RecipientAddress `gorm:"many2many:recipient_address_association" json:"delivery_addresses,omitempty"` // Many-to-many delivery addresses
	CreatedAt         time.Time          `json:"created_at"`                                 // Set by the store
	UpdatedAt         time.Time          `json:"updated_at"`                                 // Set by the store
}
