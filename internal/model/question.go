package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultTopic = "General"

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	OptionsJSON   datatypes.JSON `json:"options" gorm:"column:options;not null"` // ordered JSON array of strings
	CorrectOption string         `json:"correct_option" gorm:"size:255;not null"`
	Topic         string         `json:"topic" gorm:"size:50;index"`
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// EncodeOptions serializes answer choices preserving their order.
func EncodeOptions(options []string) (datatypes.JSON, error) {
	if options == nil {
		options = []string{}
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// Options decodes the stored answer choices. Anything other than a JSON
// array of strings is an error.
func (q *Question) Options() ([]string, error) {
	var options []string
	if err := json.Unmarshal(q.OptionsJSON, &options); err != nil {
		return nil, err
	}
	if options == nil {
		options = []string{}
	}
	return options, nil
}
