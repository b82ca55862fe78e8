package repository

import (
	"errors"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	RecordScore(userID uint, score float64) error
	Top(limit int) ([]model.LeaderboardEntry, error)
	FindByUser(userID uint) (*model.LeaderboardEntry, error)
	RecomputeRanks() error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// RecordScore folds a submitted test score into the user's aggregate entry.
func (r *leaderboardRepository) RecordScore(userID uint, score float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entry model.LeaderboardEntry
		err := tx.Where("user_id = ?", userID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = model.LeaderboardEntry{
				UserID:       userID,
				TestsTaken:   1,
				TotalScore:   score,
				BestScore:    score,
				AverageScore: score,
			}
			return tx.Create(&entry).Error
		}
		if err != nil {
			return err
		}

		entry.TestsTaken++
		entry.TotalScore += score
		if score > entry.BestScore {
			entry.BestScore = score
		}
		entry.AverageScore = entry.TotalScore / float64(entry.TestsTaken)
		return tx.Save(&entry).Error
	})
}

func (r *leaderboardRepository) Top(limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []model.LeaderboardEntry
	err := r.db.Preload("User").
		Order("best_score desc, average_score desc, tests_taken desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *leaderboardRepository) FindByUser(userID uint) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	if err := r.db.Where("user_id = ?", userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// RecomputeRanks rewrites the rank column from the current standings.
func (r *leaderboardRepository) RecomputeRanks() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entries []model.LeaderboardEntry
		if err := tx.Order("best_score desc, average_score desc, tests_taken desc").Find(&entries).Error; err != nil {
			return err
		}
		for i := range entries {
			rank := i + 1
			if entries[i].Rank == rank {
				continue
			}
			if err := tx.Model(&model.LeaderboardEntry{}).
				Where("id = ?", entries[i].ID).
				Update("rank", rank).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
