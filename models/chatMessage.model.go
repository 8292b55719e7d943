package models

import "gorm.io/gorm"

// ChatMessage rows are immutable once created. There is no edit or delete
// endpoint; ordering is by creation time.
type ChatMessage struct {
	gorm.Model
	CourseID uint   `gorm:"index;not null" json:"course_id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Course   Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
