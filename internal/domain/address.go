package domain

import "time"

// UserAddress Model (delivery address belonging to users)
type UserAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`               // Primary key
	Street    string    `gorm:"size:255" json:"street"`             // Street
	City      string    `gorm:"size:100;not null" json:"city"`      // City (required)
	State     string    `gorm:"size:100" json:"state"`              // State
	ZipCode   string    `gorm:"size:20" json:"zip_code"`            // Zip code
	Country   string    `gorm:"size:100;not null" json:"country"`   // Country (required)
	Latitude  *float64  `json:"latitude,omitempty"`                 // Optional latitude
	Longitude *float64  `json:"longitude,omitempty"`                // Optional longitude
	CreatedAt time.Time `json:"created_at"`                         // Set by the store
	UpdatedAt time.Time `json:"updated_at"`                         // Set by the store
}

// RecipientAddress Model (delivery address belonging to recipients)
type RecipientAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`               // Primary key
	Street    string    `gorm:"size:255" json:"street"`             // Street
	City      string    `gorm:"size:100;not null" json:"city"`      // City (required)
	State     string    `gorm:"size:100" json:"state"`              // State
	ZipCode   string    `gorm:"size:20" json:"zip_code"`            // Zip code
	Country   string    `gorm:"size:100;not null" json:"country"`   // Country (required)
	Latitude  *float64  `json:"latitude,omitempty"`                 // Optional latitude
	Longitude *float64  `json:"longitude,omitempty"`                // Optional longitude
	CreatedAt time.Time `json:"created_at"`                         // Set by the store
	UpdatedAt time.Time `json:"updated_at"`                         // Set by the store
}

// BillingAddress Model (one per user)
type BillingAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`               // Primary key
	Street    string    `gorm:"size:255" json:"street"`             // Street
	City      string    `gorm:"size:100;not null" json:"city"`      // City (required)
	State     string    `gorm:"size:100" json:"state"`              // State
	ZipCode   string    `gorm:"size:20" json:"zip_code"`            // Zip code
	Country   string    `gorm:"size:100;not null" json:"country"`   // Country (required)
	Latitude  *float64  `json:"latitude,omitempty"`                 // Optional latitude
	Longitude *float64  `json:"longitude,omitempty"`                // Optional longitude
	CreatedAt time.Time `json:"created_at"`                         // Set by the store
	UpdatedAt time.Time `json:"updated_at"`                         // Set by the store
}
