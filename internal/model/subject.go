package model

import (
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ExamID    uint           `json:"exam_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"` // "General Studies"
	Topics    []Topic        `json:"topics,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
