package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ExternalID string         `json:"external_id" gorm:"not null;uniqueIndex"`
	Email      string         `json:"email" gorm:"index"`
	Name       string         `json:"name"`
	Role       string         `json:"role" gorm:"not null;default:student"` // "student", "admin"
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
