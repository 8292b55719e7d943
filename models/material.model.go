package models

import "gorm.io/gorm"

const (
	MaterialVideo    = "video"
	MaterialDocument = "document"
	MaterialQuiz     = "quiz"
	MaterialOther    = "other"
)

type CourseMaterial struct {
	gorm.Model
	CourseID    uint   `gorm:"index;not null" json:"course_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"not null" json:"type"`
	FilePath    string `gorm:"default:''" json:"file_path"`
	Content     string `gorm:"type:text" json:"content"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
	IsPreview   bool   `gorm:"default:false" json:"is_preview"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
	Course      Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
