package dto

import "time"

type ResultView struct {
	ID             uint
	UserID         uint
	Username       string
	Score          int
	TotalQuestions int
	Timestamp      time.Time
	Passed         bool
}

// ExamOutcome is what a student sees right after submitting.
type ExamOutcome struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	Passed         bool
}
