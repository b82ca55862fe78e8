package model

import (
	"time"

	"gorm.io/gorm"
)

type Topic struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"not null"` // "Modern Indian History"
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
