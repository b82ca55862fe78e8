package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/metrics"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

// TestSubmissionService scores a submitted mock test, reveals the answer
// key and folds the result into the leaderboard.
type TestSubmissionService interface {
	SubmitTest(userID uint, publicID string, req dto.SubmitTestRequest) (*dto.SubmissionResultDTO, error)
}

type testSubmissionService struct {
	mockTestRepo    repository.MockTestRepository
	leaderboardRepo repository.LeaderboardRepository
	scoreConverter  ScoreConverterService
	db              *gorm.DB
}

func NewTestSubmissionService(
	mockTestRepo repository.MockTestRepository,
	leaderboardRepo repository.LeaderboardRepository,
	scoreConverter ScoreConverterService,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		mockTestRepo:    mockTestRepo,
		leaderboardRepo: leaderboardRepo,
		scoreConverter:  scoreConverter,
		db:              db,
	}
}

// SubmitTest marks the user's answers against the stored answer key. Every
// question in the test counts toward the score; unanswered ones count as
// wrong. A test can only be submitted once.
func (s *testSubmissionService) SubmitTest(userID uint, publicID string, req dto.SubmitTestRequest) (*dto.SubmissionResultDTO, error) {
	// 1. Load the test with its questions and check it is submittable.
	test, err := s.mockTestRepo.FindByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	if test.UserID != userID {
		return nil, ErrTestAccessDenied
	}
	if test.Status == model.MockTestStatusCompleted {
		return nil, ErrTestAlreadySubmitted
	}
	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("test %s has no questions, submission is not possible", publicID)
	}

	// 2. Index submitted answers; answers for questions outside this test
	// are ignored rather than rejected.
	selectedByQuestion := make(map[uint]string, len(req.Answers))
	for _, answer := range req.Answers {
		if _, exists := selectedByQuestion[answer.QuestionID]; exists {
			log.Warn().Uint("questionID", answer.QuestionID).Str("publicID", publicID).Msg("SubmitTest: Duplicate answer for question, keeping the first")
			continue
		}
		selectedByQuestion[answer.QuestionID] = answer.SelectedOption
	}

	validAnswers := 0
	correctCount := 0
	for i := range test.Questions {
		tq := &test.Questions[i]
		selected, answered := selectedByQuestion[tq.QuestionID]
		if !answered {
			continue
		}
		delete(selectedByQuestion, tq.QuestionID)
		validAnswers++

		correct := selected == tq.Question.CorrectOption
		if correct {
			correctCount++
		}
		selectedCopy := selected
		correctCopy := correct
		tq.SelectedOption = &selectedCopy
		tq.Correct = &correctCopy
	}
	for questionID := range selectedByQuestion {
		log.Warn().Uint("questionID", questionID).Str("publicID", publicID).Msg("SubmitTest: Answer for a question not part of this test, skipping")
	}
	if validAnswers == 0 {
		return nil, fmt.Errorf("no valid answers provided for test %s", publicID)
	}

	// 3. Score over the full question set, not just the answered part.
	score, err := s.scoreConverter.PercentageScore(correctCount, len(test.Questions))
	if err != nil {
		return nil, fmt.Errorf("failed to compute score: %w", err)
	}
	grade, err := s.scoreConverter.ConvertToGrade(score)
	if err != nil {
		return nil, fmt.Errorf("failed to convert score to grade: %w", err)
	}

	// 4. Persist responses and the final test state together.
	submittedAt := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range test.Questions {
			tq := &test.Questions[i]
			if tq.SelectedOption == nil {
				continue
			}
			if err := tx.Model(&model.MockTestQuestion{}).
				Where("id = ?", tq.ID).
				Updates(map[string]interface{}{
					"selected_option": tq.SelectedOption,
					"correct":         tq.Correct,
				}).Error; err != nil {
				return fmt.Errorf("failed to record answer for question %d: %w", tq.QuestionID, err)
			}
		}

		return tx.Model(&model.MockTest{}).
			Where("id = ?", test.ID).
			Updates(map[string]interface{}{
				"status":       model.MockTestStatusCompleted,
				"score":        score,
				"grade":        grade,
				"submitted_at": submittedAt,
			}).Error
	})
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Msg("SubmitTest: Failed to persist submission")
		return nil, err
	}

	// 5. Leaderboard upkeep is best-effort; a failure here must not undo a
	// scored submission.
	if err := s.leaderboardRepo.RecordScore(userID, score); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitTest: Failed to update leaderboard entry")
	}

	metrics.IncTestSubmitted()
	log.Info().
		Str("publicID", publicID).
		Uint("userID", userID).
		Float64("score", score).
		Str("grade", grade).
		Int("correct", correctCount).
		Int("total", len(test.Questions)).
		Msg("SubmitTest: Test scored")

	// 6. Build the result with the answer key revealed.
	result := &dto.SubmissionResultDTO{
		PublicID:     publicID,
		Score:        score,
		Grade:        grade,
		CorrectCount: correctCount,
		TotalCount:   len(test.Questions),
		Answers:      make([]dto.AnswerResultDTO, 0, len(test.Questions)),
	}
	for _, tq := range test.Questions {
		answer := dto.AnswerResultDTO{
			QuestionID:     tq.QuestionID,
			Position:       tq.Position,
			Text:           tq.Question.Text,
			SelectedOption: tq.SelectedOption,
			CorrectOption:  tq.Question.CorrectOption,
			Correct:        tq.Correct != nil && *tq.Correct,
			Explanation:    tq.Question.Explanation,
		}
		result.Answers = append(result.Answers, answer)
	}
	return result, nil
}
