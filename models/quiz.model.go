package models

import "gorm.io/gorm"

type Quiz struct {
	gorm.Model
	CourseID     uint    `gorm:"index;not null" json:"course_id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	PassingScore float64 `gorm:"default:50" json:"passing_score"`
	TimeLimit    int     `gorm:"default:0" json:"time_limit_minutes"` // 0 means unlimited
	IsDeleted    bool    `gorm:"default:false" json:"-"`
	Course       Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

type QuizQuestion struct {
	gorm.Model
	QuizID        uint   `gorm:"index;not null" json:"quiz_id"`
	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	CorrectAnswer string `gorm:"not null" json:"-"`
	Points        int    `gorm:"default:1" json:"points"`
	OrderIndex    int    `gorm:"default:0" json:"order_index"`
	IsDeleted     bool   `gorm:"default:false" json:"-"`
	Quiz          Quiz   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

type QuizOption struct {
	gorm.Model
	QuestionID uint         `gorm:"index;not null" json:"question_id"`
	OptionText string       `gorm:"not null" json:"option_text"`
	OrderIndex int          `gorm:"default:0" json:"order_index"`
	IsDeleted  bool         `gorm:"default:false" json:"-"`
	Question   QuizQuestion `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

// QuizAttempt stores the submitted answers as a JSON blob keyed by question
// id. AttemptNumber is computed as max+1 before insert and is not guarded
// against concurrent submissions by the same user.
type QuizAttempt struct {
	gorm.Model
	UserID        uint    `gorm:"index;not null" json:"user_id"`
	QuizID        uint    `gorm:"index;not null" json:"quiz_id"`
	Answers       string  `gorm:"type:text" json:"answers"`
	Score         int     `gorm:"default:0" json:"score"`
	TotalPoints   int     `gorm:"default:0" json:"total_points"`
	Percentage    float64 `gorm:"default:0" json:"percentage"`
	Passed        bool    `gorm:"default:false" json:"passed"`
	AttemptNumber int     `gorm:"default:1" json:"attempt_number"`
	User          User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quiz          Quiz    `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}
