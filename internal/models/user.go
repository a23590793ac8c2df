package models

// User represents an authenticated account.
// The password column stores a bcrypt hash, never the plain text.
type User struct {
	Base
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	DisplayName   string   `json:"display_name"`
	EmailVerified bool     `gorm:"default:false" json:"email_verified"`
	IsActive      bool     `gorm:"default:true" json:"is_active"`
	Records       []Record `gorm:"foreignKey:OwnerID" json:"records,omitempty"`
}
