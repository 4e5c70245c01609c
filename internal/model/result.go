package model

import "time"

type Result struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null;index"`
}

// ResultWithUsername is a Result joined with its owner's username.
type ResultWithUsername struct {
	Result
	Username string
}
