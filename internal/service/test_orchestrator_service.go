package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/metrics"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

// semanticSampleLimit bounds how many similar stored questions are pulled in
// as style references for the generation prompt.
const semanticSampleLimit = 5

// maxPromptSamples bounds the combined reference block handed to the prompt.
const maxPromptSamples = 8

// PreGenCacheKey is the cache key under which pre-generated question sets
// for a topic are stored.
func PreGenCacheKey(topicID uint) string {
	return fmt.Sprintf("pregen:topic:%d", topicID)
}

// TestOrchestratorService assembles mock tests. It consumes pre-generated
// sets from the cache when available and otherwise mixes stored
// previous-year questions with freshly generated ones, degrading to whatever
// is available rather than failing the request.
type TestOrchestratorService interface {
	StartTest(ctx context.Context, userID uint, topicID uint, req dto.StartTestRequest) (*dto.MockTestDTO, error)
	BuildMix(ctx context.Context, topicID uint, totalCount int, ratio float64) (*MixResult, error)
}

type testOrchestratorService struct {
	examRepo     repository.ExamRepository
	subjectRepo  repository.SubjectRepository
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
	mockTestRepo repository.MockTestRepository
	planner      MixPlannerService
	generator    QuestionGeneratorService
	retriever    SemanticRetrieverService
	store        cache.Store
	db           *gorm.DB
	budget       time.Duration
	defaultRatio float64
}

func NewTestOrchestratorService(
	cfg *config.Config,
	examRepo repository.ExamRepository,
	subjectRepo repository.SubjectRepository,
	topicRepo repository.TopicRepository,
	questionRepo repository.QuestionRepository,
	mockTestRepo repository.MockTestRepository,
	planner MixPlannerService,
	generator QuestionGeneratorService,
	retriever SemanticRetrieverService,
	store cache.Store,
	db *gorm.DB,
) TestOrchestratorService {
	return &testOrchestratorService{
		examRepo:     examRepo,
		subjectRepo:  subjectRepo,
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
		mockTestRepo: mockTestRepo,
		planner:      planner,
		generator:    generator,
		retriever:    retriever,
		store:        store,
		db:           db,
		budget:       time.Duration(cfg.Generation.RequestBudgetSeconds) * time.Second,
		defaultRatio: cfg.Generation.DefaultRatio,
	}
}

// StartTest builds, persists and returns a mock test for the user.
func (s *testOrchestratorService) StartTest(ctx context.Context, userID uint, topicID uint, req dto.StartTestRequest) (*dto.MockTestDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	topic, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}

	ratio := s.defaultRatio
	if req.Ratio != nil {
		ratio = *req.Ratio
	}

	// 1. Consume a pre-generated set if one is waiting. GetDel is atomic,
	// so two simultaneous starts cannot both win the same entry.
	result, fromCache := s.takeCached(ctx, topicID, req.Count)

	// 2. Otherwise assemble the mix live.
	if result == nil {
		result, err = s.BuildMix(ctx, topicID, req.Count, ratio)
		if err != nil {
			return nil, err
		}
	}

	// 3. Persist the test record; generated questions get their IDs here.
	mockTest, err := s.persistTest(userID, topic.ID, req.Count, ratio, fromCache, result)
	if err != nil {
		log.Error().Err(err).Uint("topicID", topicID).Uint("userID", userID).Msg("StartTest: Failed to persist mock test")
		return nil, err
	}

	mode := "live"
	if fromCache {
		mode = "cache"
	}
	metrics.IncTestStarted(mode)
	if mockTest.ActualCount < mockTest.RequestedCount {
		metrics.IncTestDegraded()
		log.Warn().
			Str("publicID", mockTest.PublicID).
			Int("requested", mockTest.RequestedCount).
			Int("actual", mockTest.ActualCount).
			Msg("StartTest: Serving a degraded test with fewer questions than requested")
	}
	log.Info().
		Str("publicID", mockTest.PublicID).
		Uint("topicID", topicID).
		Int("previousYear", mockTest.PreviousYearCount).
		Int("aiGenerated", mockTest.AIGeneratedCount).
		Bool("fromCache", fromCache).
		Msg("StartTest: Mock test created")

	// 4. Reload with associations so the response carries full question rows.
	detailed, err := s.mockTestRepo.FindByID(mockTest.ID)
	if err != nil {
		log.Error().Err(err).Uint("mockTestID", mockTest.ID).Msg("StartTest: Failed to reload persisted test")
		return nil, err
	}
	return newMockTestDTO(detailed, false), nil
}

// takeCached atomically removes and decodes the pre-generated entry for the
// topic. Entries larger than the requested count are trimmed; smaller ones
// are served as-is under the degrade-not-fail policy. Store and decode
// failures count as misses.
func (s *testOrchestratorService) takeCached(ctx context.Context, topicID uint, totalCount int) (*MixResult, bool) {
	payload, found, err := s.store.GetDel(ctx, PreGenCacheKey(topicID))
	if err != nil {
		log.Warn().Err(err).Uint("topicID", topicID).Msg("Cache lookup failed, falling through to live generation")
		return nil, false
	}
	if !found {
		return nil, false
	}

	var result MixResult
	if err := json.Unmarshal(payload, &result); err != nil {
		log.Warn().Err(err).Uint("topicID", topicID).Msg("Discarding undecodable pre-generated entry")
		return nil, false
	}
	if len(result.Questions) == 0 {
		return nil, false
	}

	if len(result.Questions) > totalCount {
		result.Questions = result.Questions[:totalCount]
		result.PreviousYearCount, result.AIGeneratedCount = countBySource(result.Questions)
	}
	return &result, true
}

// BuildMix runs the live pipeline: concurrent pool fetches, the mix plan,
// generation, and the shortfall fallback. The scheduler reuses it to fill
// the cache ahead of time.
func (s *testOrchestratorService) BuildMix(ctx context.Context, topicID uint, totalCount int, ratio float64) (*MixResult, error) {
	topic, subject, exam, err := s.resolveHierarchy(topicID)
	if err != nil {
		return nil, err
	}

	// The previous-year pool and the semantic reference pool are independent
	// I/O calls, so their latencies overlap.
	poolChan := make(chan []model.Question, 1)
	samplesChan := make(chan []model.Question, 1)
	go func() {
		pool, poolErr := s.questionRepo.FindRandomByTopic(topicID, totalCount, nil)
		if poolErr != nil {
			log.Error().Err(poolErr).Uint("topicID", topicID).Msg("BuildMix: Previous-year pool fetch failed, continuing with generation only")
			pool = nil
		}
		poolChan <- pool
	}()
	go func() {
		samplesChan <- s.retriever.FindSimilar(ctx, topic.Name+" "+topic.Description, semanticSampleLimit)
	}()
	pool := <-poolChan
	semanticSamples := <-samplesChan

	plan := s.planner.Plan(MixRequest{TopicID: topicID, TotalCount: totalCount, PreviousYearRatio: ratio}, len(pool))
	selected := make([]model.Question, 0, totalCount)
	selected = append(selected, pool[:plan.PreviousYearCount]...)
	remainder := pool[plan.PreviousYearCount:]

	var generated []model.Question
	if plan.AIGeneratedCount > 0 {
		samples := buildSamples(semanticSamples, selected)
		generated, err = s.generator.Generate(ctx, GenerationRequest{
			TopicID:    topicID,
			Exam:       exam.Name,
			Subject:    subject.Name,
			Topic:      topic.Name,
			Difficulty: "medium",
			Count:      plan.AIGeneratedCount,
			Samples:    samples,
		})
		if err != nil {
			log.Warn().Err(err).Uint("topicID", topicID).Msg("BuildMix: Generation failed, backfilling from the question bank")
			generated = nil
		}
	}

	// Backfill a generation shortfall from stored questions: first the
	// unused remainder of the fetched pool, then one extra draw excluding
	// everything already picked.
	if shortfall := plan.AIGeneratedCount - len(generated); shortfall > 0 {
		take := shortfall
		if take > len(remainder) {
			take = len(remainder)
		}
		selected = append(selected, remainder[:take]...)
		shortfall -= take

		if shortfall > 0 {
			excludeIDs := make([]uint, 0, len(pool))
			for _, q := range pool {
				excludeIDs = append(excludeIDs, q.ID)
			}
			extra, extraErr := s.questionRepo.FindRandomByTopic(topicID, shortfall, excludeIDs)
			if extraErr != nil {
				log.Error().Err(extraErr).Uint("topicID", topicID).Msg("BuildMix: Backfill fetch failed")
			} else {
				selected = append(selected, extra...)
			}
		}
	}

	questions := append(selected, generated...)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: topic %d", ErrNoQuestionsAvailable, topicID)
	}

	// Interleave sources so question order reveals nothing about origin.
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	prevCount, aiCount := countBySource(questions)
	return &MixResult{
		Questions:         questions,
		PreviousYearCount: prevCount,
		AIGeneratedCount:  aiCount,
		Ratio:             ratio,
		CreatedAt:         time.Now().Unix(),
	}, nil
}

func (s *testOrchestratorService) resolveHierarchy(topicID uint) (*model.Topic, *model.Subject, *model.Exam, error) {
	topic, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, nil, nil, err
	}
	subject, err := s.subjectRepo.FindByID(topic.SubjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	exam, err := s.examRepo.FindByID(subject.ExamID)
	if err != nil {
		return nil, nil, nil, err
	}
	return topic, subject, exam, nil
}

// persistTest inserts freshly generated questions and the test record in a
// single transaction.
func (s *testOrchestratorService) persistTest(userID, topicID uint, requestedCount int, ratio float64, fromCache bool, result *MixResult) (*model.MockTest, error) {
	mockTest := &model.MockTest{
		PublicID:          uuid.NewString(),
		UserID:            userID,
		TopicID:           topicID,
		RequestedCount:    requestedCount,
		ActualCount:       len(result.Questions),
		PreviousYearCount: result.PreviousYearCount,
		AIGeneratedCount:  result.AIGeneratedCount,
		Ratio:             ratio,
		FromCache:         fromCache,
		Status:            model.MockTestStatusCreated,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range result.Questions {
			if result.Questions[i].ID != 0 {
				continue
			}
			if err := tx.Create(&result.Questions[i]).Error; err != nil {
				return fmt.Errorf("failed to store generated question: %w", err)
			}
		}

		if err := tx.Create(mockTest).Error; err != nil {
			return fmt.Errorf("failed to create mock test record: %w", err)
		}

		testQuestions := make([]model.MockTestQuestion, 0, len(result.Questions))
		for i, q := range result.Questions {
			testQuestions = append(testQuestions, model.MockTestQuestion{
				MockTestID: mockTest.ID,
				QuestionID: q.ID,
				Position:   i + 1,
				Source:     q.Source,
			})
		}
		if err := tx.Create(&testQuestions).Error; err != nil {
			return fmt.Errorf("failed to attach questions to mock test: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mockTest, nil
}

func countBySource(questions []model.Question) (previousYear, aiGenerated int) {
	for _, q := range questions {
		if q.Source == model.QuestionSourceAIGenerated {
			aiGenerated++
		} else {
			previousYear++
		}
	}
	return previousYear, aiGenerated
}

// buildSamples merges the semantic hits with the already selected
// previous-year questions into one bounded reference block, semantic hits
// first since they match the topic description most closely.
func buildSamples(semantic, selected []model.Question) []model.Question {
	samples := make([]model.Question, 0, maxPromptSamples)
	seen := make(map[uint]bool)
	for _, q := range semantic {
		if len(samples) == maxPromptSamples {
			return samples
		}
		if q.ID != 0 && seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		samples = append(samples, q)
	}
	for _, q := range selected {
		if len(samples) == maxPromptSamples {
			return samples
		}
		if q.ID != 0 && seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		samples = append(samples, q)
	}
	return samples
}

// newMockTestDTO converts a loaded mock test into its response shape.
// Correct answers and explanations are included only once the test has been
// submitted and scored.
func newMockTestDTO(test *model.MockTest, revealAnswers bool) *dto.MockTestDTO {
	var out dto.MockTestDTO
	if err := copier.Copy(&out, test); err != nil {
		log.Error().Err(err).Uint("mockTestID", test.ID).Msg("Failed to copy mock test to DTO")
	}
	out.TopicName = test.Topic.Name

	out.Questions = make([]dto.MockTestQuestionDTO, 0, len(test.Questions))
	for _, tq := range test.Questions {
		questionDTO := dto.MockTestQuestionDTO{
			QuestionID: tq.QuestionID,
			Position:   tq.Position,
			Text:       tq.Question.Text,
			OptionA:    tq.Question.OptionA,
			OptionB:    tq.Question.OptionB,
			OptionC:    tq.Question.OptionC,
			OptionD:    tq.Question.OptionD,
			Source:     tq.Source,
			Difficulty: tq.Question.Difficulty,
		}
		if revealAnswers {
			questionDTO.SelectedOption = tq.SelectedOption
			questionDTO.CorrectOption = tq.Question.CorrectOption
			questionDTO.Correct = tq.Correct
			questionDTO.Explanation = tq.Question.Explanation
		}
		out.Questions = append(out.Questions, questionDTO)
	}
	return &out
}
