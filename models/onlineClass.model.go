package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ClassScheduled = "scheduled"
	ClassActive    = "active"
	ClassCompleted = "completed"
	ClassCancelled = "cancelled"
)

type OnlineClass struct {
	gorm.Model
	CourseID        uint      `gorm:"index;not null" json:"course_id"`
	InstructorID    uint      `gorm:"index;not null" json:"instructor_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	ScheduledDate   time.Time `gorm:"not null" json:"scheduled_date"`
	DurationMinutes int       `gorm:"default:60" json:"duration_minutes"`
	MeetingRoomName string    `gorm:"not null" json:"meeting_room_name"`
	MaxParticipants int       `gorm:"default:50" json:"max_participants"`
	EnableChat      bool      `gorm:"default:true" json:"enable_chat"`
	EnableRecording bool      `gorm:"default:false" json:"enable_recording"`
	Status          string    `gorm:"default:'scheduled'" json:"status"`
	IsDeleted       bool      `gorm:"default:false" json:"-"`
	Course          Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

const (
	AttendanceJoined = "joined"
	AttendanceLeft   = "left"
)

type ClassAttendance struct {
	gorm.Model
	OnlineClassID uint        `gorm:"index;not null;uniqueIndex:idx_class_user" json:"online_class_id"`
	UserID        uint        `gorm:"index;not null;uniqueIndex:idx_class_user" json:"user_id"`
	JoinedAt      *time.Time  `json:"joined_at"`
	LeftAt        *time.Time  `json:"left_at"`
	Status        string      `gorm:"default:'joined'" json:"status"`
	OnlineClass   OnlineClass `gorm:"foreignKey:OnlineClassID;constraint:OnDelete:CASCADE" json:"-"`
	User          User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
