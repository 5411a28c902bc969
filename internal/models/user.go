// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered journal owner.
type User struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Username  string           `gorm:"uniqueIndex;not null" json:"username"`
	Email     string           `gorm:"uniqueIndex;not null" json:"email"`
	Password  string           `gorm:"not null" json:"-"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
	Entries   []GratitudeEntry `gorm:"foreignKey:UserID" json:"-"`
}
