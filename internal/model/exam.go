package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"` // "UPSC Prelims"
	Description string         `json:"description,omitempty"`
	Subjects    []Subject      `json:"subjects,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
