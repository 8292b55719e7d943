package models

import "gorm.io/gorm"

// VideoProgress tracks how much of a video material a student has watched.
// Watched duration only ever grows; repeat updates merge via max so
// out-of-order client reports never regress progress.
type VideoProgress struct {
	gorm.Model
	UserID          uint           `gorm:"index;not null;uniqueIndex:idx_user_material" json:"user_id"`
	MaterialID      uint           `gorm:"index;not null;uniqueIndex:idx_user_material" json:"material_id"`
	WatchedSeconds  int            `gorm:"default:0" json:"watched_duration_seconds"`
	TotalSeconds    int            `gorm:"default:0" json:"total_duration_seconds"`
	Progress        float64        `gorm:"default:0" json:"progress_percentage"`
	Completed       bool           `gorm:"default:false" json:"completed"`
	WatchCount      int            `gorm:"default:0" json:"watch_count"`
	User            User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CourseMaterial  CourseMaterial `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"-"`
}
