package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	MockTestStatusCreated   = "created"
	MockTestStatusCompleted = "completed"
)

type MockTest struct {
	ID                uint               `gorm:"primarykey" json:"id"`
	PublicID          string             `json:"public_id" gorm:"not null;uniqueIndex"`
	UserID            uint               `json:"user_id" gorm:"not null;index"`
	TopicID           uint               `json:"topic_id" gorm:"not null;index"`
	Topic             Topic              `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	RequestedCount    int                `json:"requested_count" gorm:"not null"`
	ActualCount       int                `json:"actual_count" gorm:"not null"`
	PreviousYearCount int                `json:"previous_year_count" gorm:"not null"`
	AIGeneratedCount  int                `json:"ai_generated_count" gorm:"not null"`
	Ratio             float64            `json:"ratio" gorm:"not null"`
	FromCache         bool               `json:"from_cache" gorm:"not null;default:false"`
	Status            string             `json:"status" gorm:"not null;default:created"` // "created", "completed"
	Score             *float64           `json:"score,omitempty"`
	Grade             *string            `json:"grade,omitempty"`
	SubmittedAt       *time.Time         `json:"submitted_at,omitempty"`
	Questions         []MockTestQuestion `json:"questions,omitempty" gorm:"foreignKey:MockTestID"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
}
