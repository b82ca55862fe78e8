package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionSourcePreviousYear = "previous_year"
	QuestionSourceAIGenerated  = "ai_generated"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TopicID       uint           `json:"topic_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectOption string         `json:"correct_option" gorm:"not null"` // "A", "B", "C", "D"
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
	Source        string         `json:"source" gorm:"not null;index"`              // "previous_year", "ai_generated"
	Difficulty    string         `json:"difficulty" gorm:"not null;default:medium"` // "easy", "medium", "hard"
	Year          *int           `json:"year,omitempty"`
	PromptVersion *string        `json:"prompt_version,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four answer options in display order.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
