package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

// MockTestService serves a user's existing tests. The answer key stays
// hidden until a test has been submitted.
type MockTestService interface {
	GetTestForUser(userID uint, publicID string) (*dto.MockTestDTO, error)
	ListTestsForUser(userID uint, limit int) ([]dto.MockTestSummaryDTO, error)
}

type mockTestService struct {
	mockTestRepo repository.MockTestRepository
}

func NewMockTestService(mockTestRepo repository.MockTestRepository) MockTestService {
	return &mockTestService{mockTestRepo: mockTestRepo}
}

func (s *mockTestService) GetTestForUser(userID uint, publicID string) (*dto.MockTestDTO, error) {
	test, err := s.mockTestRepo.FindByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	if test.UserID != userID {
		return nil, ErrTestAccessDenied
	}

	revealAnswers := test.Status == model.MockTestStatusCompleted
	return newMockTestDTO(test, revealAnswers), nil
}

func (s *mockTestService) ListTestsForUser(userID uint, limit int) ([]dto.MockTestSummaryDTO, error) {
	tests, err := s.mockTestRepo.FindByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	return newMockTestSummaryDTOs(tests), nil
}

func newMockTestSummaryDTOs(tests []model.MockTest) []dto.MockTestSummaryDTO {
	summaries := make([]dto.MockTestSummaryDTO, 0, len(tests))
	for i := range tests {
		var summary dto.MockTestSummaryDTO
		if err := copier.Copy(&summary, &tests[i]); err != nil {
			log.Error().Err(err).Uint("mockTestID", tests[i].ID).Msg("Failed to copy mock test summary")
			continue
		}
		summary.TopicName = tests[i].Topic.Name
		summaries = append(summaries, summary)
	}
	return summaries
}
