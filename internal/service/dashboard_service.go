package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

const recentTestsLimit = 5

// DashboardService aggregates a user's progress and serves the public
// leaderboard.
type DashboardService interface {
	GetDashboard(userID uint) (*dto.DashboardDTO, error)
	GetLeaderboard(limit int) ([]dto.LeaderboardEntryDTO, error)
}

type dashboardService struct {
	mockTestRepo    repository.MockTestRepository
	leaderboardRepo repository.LeaderboardRepository
	sessionRepo     repository.StudySessionRepository
}

func NewDashboardService(
	mockTestRepo repository.MockTestRepository,
	leaderboardRepo repository.LeaderboardRepository,
	sessionRepo repository.StudySessionRepository,
) DashboardService {
	return &dashboardService{
		mockTestRepo:    mockTestRepo,
		leaderboardRepo: leaderboardRepo,
		sessionRepo:     sessionRepo,
	}
}

func (s *dashboardService) GetDashboard(userID uint) (*dto.DashboardDTO, error) {
	testsTaken, err := s.mockTestRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	dashboard := dto.DashboardDTO{TestsTaken: testsTaken}

	// A user with no scored tests has no leaderboard entry yet.
	entry, err := s.leaderboardRepo.FindByUser(userID)
	switch {
	case err == nil:
		dashboard.BestScore = entry.BestScore
		dashboard.AverageScore = entry.AverageScore
	case errors.Is(err, gorm.ErrRecordNotFound):
		// leave the scores at zero
	default:
		return nil, err
	}

	minutes, err := s.sessionRepo.SumMinutesByUser(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("GetDashboard: failed to sum study minutes")
	} else {
		dashboard.StudyMinutes = minutes
	}

	recent, err := s.mockTestRepo.FindByUser(userID, recentTestsLimit)
	if err != nil {
		return nil, err
	}
	dashboard.RecentTests = newMockTestSummaryDTOs(recent)

	return &dashboard, nil
}

func (s *dashboardService) GetLeaderboard(limit int) ([]dto.LeaderboardEntryDTO, error) {
	entries, err := s.leaderboardRepo.Top(limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.LeaderboardEntryDTO, 0, len(entries))
	for i, entry := range entries {
		rank := entry.Rank
		if rank == 0 {
			// Ranks are recomputed hourly; fall back to list order for
			// entries scored since the last pass.
			rank = i + 1
		}
		result = append(result, dto.LeaderboardEntryDTO{
			Rank:         rank,
			UserName:     entry.User.Name,
			TestsTaken:   entry.TestsTaken,
			BestScore:    entry.BestScore,
			AverageScore: entry.AverageScore,
		})
	}
	return result, nil
}
