package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Admin accounts are created by other admins, never via signup.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleParent     = "parent"
	RoleAdmin      = "admin"
)

const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserDeleted  = "deleted"
)

type User struct {
	gorm.Model
	Name              string     `gorm:"default:''" json:"name"`
	Email             string     `gorm:"unique;not null" json:"email"`
	Password          string     `gorm:"not null" json:"-"`
	Role              string     `gorm:"default:'student'" json:"role"`
	Status            string     `gorm:"default:'active'" json:"status"`
	Bio               string     `gorm:"type:text" json:"bio"`
	Phone             string     `gorm:"default:''" json:"phone"`
	DateOfBirth       string     `gorm:"default:''" json:"date_of_birth"`
	Gender            string     `gorm:"default:''" json:"gender"`
	Country           string     `gorm:"default:''" json:"country"`
	ProfileImage      string     `gorm:"default:''" json:"profile_image"`
	IsEmailVerified   bool       `gorm:"default:false" json:"is_email_verified"`
	VerificationToken string     `gorm:"default:''" json:"-"`
	LastLogin         *time.Time `json:"last_login"`
}
