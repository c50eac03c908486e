package models

import (
	"gorm.io/gorm"
)

// User represents an account that can log into the system.
// Mobile sellers upload recordings; admins manage them and trigger transcription.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"full_name"`
	Role         string `json:"role" gorm:"default:'seller'"` // seller or admin
	LocationID   *uint  `json:"location_id" gorm:"index"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Location represents a sales floor (store, point of sale) recordings are attached to.
type Location struct {
	gorm.Model
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	Address string `json:"address"`
	Comment string `json:"comment"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
