package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StudySessionStatusActive    = "active"
	StudySessionStatusCompleted = "completed"
)

type StudySession struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	TopicID        uint           `json:"topic_id" gorm:"not null;index"`
	Topic          Topic          `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	PlannedMinutes int            `json:"planned_minutes" gorm:"not null"`
	Status         string         `json:"status" gorm:"not null;default:active"` // "active", "completed"
	PreGenQueued   bool           `json:"pre_gen_queued" gorm:"not null;default:false"`
	StartedAt      time.Time      `json:"started_at"`
	EndedAt        *time.Time     `json:"ended_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
