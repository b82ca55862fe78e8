package model

import (
	"time"

	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User         User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestsTaken   int            `json:"tests_taken" gorm:"not null;default:0"`
	TotalScore   float64        `json:"total_score" gorm:"not null;default:0"`
	BestScore    float64        `json:"best_score" gorm:"not null;default:0"`
	AverageScore float64        `json:"average_score" gorm:"not null;default:0"`
	Rank         int            `json:"rank" gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
