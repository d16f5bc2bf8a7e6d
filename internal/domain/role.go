package domain

// Role Model
type Role struct {
	ID    uint   `gorm:"primaryKey" json:"id"`                         // Primary key
	Name  string `gorm:"size:80;uniqueIndex" json:"name"`              // Unique role name
	Users []User `gorm:"many2many:roles_users" json:"users,omitempty"` // Many-to-many with users via roles_users
}
