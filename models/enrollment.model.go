package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentInProgress = "in_progress"
	EnrollmentCompleted  = "completed"
)

type Enrollment struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID    uint       `gorm:"index;not null;uniqueIndex:idx_user_course" json:"course_id"`
	Status      string     `gorm:"default:'in_progress'" json:"status"`
	Progress    float64    `gorm:"default:0" json:"progress_percentage"`
	CompletedAt *time.Time `json:"completed_at"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course      Course     `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
