package domain

import "time"

// User Model
type User struct {
	ID               uint            `gorm:"primaryKey" json:"id"`                               // Primary key
	FirstName        string          `gorm:"size:130;not null" json:"first_name"`               // First name
	LastName         string          `gorm:"size:130;not null" json:"last_name"`                // Last name
	Email            string          `gorm:"size:130;uniqueIndex;not null" json:"email"`        // Unique email, the DB index is the authoritative guard
	Password         string          `gorm:"not null" json:"-"`                                 // Bcrypt hash, never serialized
	PhoneNumber      string          `gorm:"size:50" json:"phone_number,omitempty"`             // Optional phone number
	BillingAddressID *uint           `json:"billing_address_id,omitempty"`                      // Foreign key to BillingAddress (0..1)
	BillingAddress   *BillingAddress `json:"billing_address,omitempty"`                         // One-to-one billing address
	Roles            []Role          `gorm:"many2many:roles_users" json:"roles,omitempty"`      // Many-to-many roles
	Addresses        []UserAddress   `gorm:"many2many:user_address_association" json:"addresses,omitempty"` // Many-to-many delivery addresses
	Parcels          []Parcel        `json:"parcels,omitempty"`                                 // Parcels sent by this user
	CreatedAt        time.Time       `json:"created_at"`                                        // Set by the store
	UpdatedAt        time.Time       `json:"updated_at"`                                        // Set by the store
}
