package model

import (
	"time"

	"gorm.io/gorm"
)

// MockTestQuestion places a question inside a mock test and later records the
// user's response to it on submission.
type MockTestQuestion struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	MockTestID     uint           `json:"mock_test_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Position       int            `json:"position" gorm:"not null"`
	Source         string         `json:"source" gorm:"not null"`    // "previous_year", "ai_generated"
	SelectedOption *string        `json:"selected_option,omitempty"` // "A".."D", nil until submitted
	Correct        *bool          `json:"correct,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
