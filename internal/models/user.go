package models

import (
	"gorm.io/gorm"
)

// User represents a registered contributor. Username and the opaque UserID
// are each unique and immutable after creation; Password holds a bcrypt
// hash, never plaintext.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	FullName string `gorm:"not null" json:"full_name"`
	Password string `gorm:"not null" json:"-"`
	UserID   string `gorm:"uniqueIndex;not null" json:"user_id"`

	// Optional demographic profile, collected at registration only.
	Gender       string `json:"gender,omitempty"`
	Organization string `json:"organization,omitempty"`
	Village      string `json:"village,omitempty"`
	Town         string `json:"town,omitempty"`
	District     string `json:"district,omitempty"`
	State        string `json:"state,omitempty"`
	DateOfBirth  string `gorm:"column:dob" json:"dob,omitempty"`
}
