package models

import "gorm.io/gorm"

const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

type Course struct {
	gorm.Model
	InstructorID     uint     `gorm:"index;not null" json:"instructor_id"`
	CategoryID       uint     `gorm:"index;not null" json:"category_id"`
	Title            string   `gorm:"not null" json:"title"`
	Slug             string   `gorm:"unique;not null" json:"slug"`
	ShortDescription string   `gorm:"default:''" json:"short_description"`
	Description      string   `gorm:"type:text" json:"description"`
	Level            string   `gorm:"default:'beginner'" json:"level"` // beginner, intermediate, advanced
	Language         string   `gorm:"default:'English'" json:"language"`
	Price            float64  `gorm:"default:0" json:"price"`
	DiscountPrice    float64  `gorm:"default:0" json:"discount_price"`
	Thumbnail        string   `gorm:"default:''" json:"thumbnail"`
	Status           string   `gorm:"default:'draft'" json:"status"`
	IsDeleted        bool     `gorm:"default:false" json:"-"`
	Instructor       User     `gorm:"foreignKey:InstructorID" json:"-"`
	Category         Category `gorm:"foreignKey:CategoryID" json:"-"`
}
