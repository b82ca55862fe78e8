package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Subject{},
		&model.Topic{},
		&model.Question{},
		&model.MockTest{},
		&model.MockTestQuestion{},
		&model.StudySession{},
		&model.LeaderboardEntry{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTopicTree(t *testing.T, db *gorm.DB) *model.Topic {
	t.Helper()
	exam := model.Exam{Name: fmt.Sprintf("UPSC Prelims %d", time.Now().UnixNano())}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("failed to seed exam: %v", err)
	}
	subject := model.Subject{ExamID: exam.ID, Name: "General Studies"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}
	topic := model.Topic{SubjectID: subject.ID, Name: "Modern Indian History", Description: "1857 to independence"}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("failed to seed topic: %v", err)
	}
	return &topic
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := model.User{ExternalID: fmt.Sprintf("ext-%d", time.Now().UnixNano()), Email: "student@example.com", Name: "Student", Role: "student"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedPreviousYearQuestions(t *testing.T, db *gorm.DB, topicID uint, n int) []model.Question {
	t.Helper()
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		year := 2015 + i
		q := model.Question{
			TopicID:       topicID,
			Text:          fmt.Sprintf("Previous year question %d", i+1),
			OptionA:       "Option A",
			OptionB:       "Option B",
			OptionC:       "Option C",
			OptionD:       "Option D",
			CorrectOption: "A",
			Source:        model.QuestionSourcePreviousYear,
			Difficulty:    "medium",
			Year:          &year,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
		questions = append(questions, q)
	}
	return questions
}

type stubGenerator struct {
	produce     int
	err         error
	calls       int
	lastCount   int
	lastSamples []model.Question
}

func (g *stubGenerator) Generate(ctx context.Context, req GenerationRequest) ([]model.Question, error) {
	g.calls++
	g.lastCount = req.Count
	g.lastSamples = req.Samples
	if g.err != nil {
		return nil, g.err
	}
	n := g.produce
	if n > req.Count {
		n = req.Count
	}
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			TopicID:       req.TopicID,
			Text:          fmt.Sprintf("Generated question %d of %d", i+1, g.calls),
			OptionA:       "Option A",
			OptionB:       "Option B",
			OptionC:       "Option C",
			OptionD:       "Option D",
			CorrectOption: "B",
			Source:        model.QuestionSourceAIGenerated,
			Difficulty:    "medium",
		})
	}
	return questions, nil
}

type stubRetriever struct {
	questions []model.Question
}

func (r *stubRetriever) FindSimilar(ctx context.Context, query string, limit int) []model.Question {
	return r.questions
}

type orchestratorFixture struct {
	db           *gorm.DB
	store        *cache.MemoryStore
	generator    *stubGenerator
	retriever    *stubRetriever
	orchestrator TestOrchestratorService
	topic        *model.Topic
	user         *model.User
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	db := newTestDB(t)
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	cfg := &config.Config{}
	cfg.Generation.RequestBudgetSeconds = 30
	cfg.Generation.DefaultRatio = 0.7

	generator := &stubGenerator{}
	retriever := &stubRetriever{}
	orchestrator := NewTestOrchestratorService(
		cfg,
		repository.NewExamRepository(db),
		repository.NewSubjectRepository(db),
		repository.NewTopicRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewMockTestRepository(db),
		NewMixPlannerService(),
		generator,
		retriever,
		store,
		db,
	)

	return &orchestratorFixture{
		db:           db,
		store:        store,
		generator:    generator,
		retriever:    retriever,
		orchestrator: orchestrator,
		topic:        seedTopicTree(t, db),
		user:         seedUser(t, db),
	}
}

func ratioPtr(v float64) *float64 { return &v }

func TestStartTestMixesStoredAndGeneratedQuestions(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 8)
	f.generator.produce = 5

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 10, Ratio: ratioPtr(0.5)})
	require.NoError(t, err)

	require.Equal(t, 10, test.ActualCount)
	require.Len(t, test.Questions, 10)
	assert.Equal(t, 5, test.PreviousYearCount)
	assert.Equal(t, 5, test.AIGeneratedCount)
	assert.Equal(t, 10, test.RequestedCount)
	assert.NotEmpty(t, test.PublicID)
	assert.False(t, test.FromCache, "live build must not report a cache hit")
	assert.Equal(t, model.MockTestStatusCreated, test.Status)

	seen := make(map[uint]bool)
	for _, q := range test.Questions {
		assert.False(t, seen[q.QuestionID], "question %d appears twice", q.QuestionID)
		seen[q.QuestionID] = true
		assert.Empty(t, q.CorrectOption, "correct option leaked before submission")
	}

	positions := make(map[int]bool)
	for _, q := range test.Questions {
		positions[q.Position] = true
	}
	for i := 1; i <= 10; i++ {
		assert.True(t, positions[i], "missing position %d", i)
	}
}

func TestStartTestBackfillsGenerationShortfall(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 8)
	f.generator.produce = 2

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 10, Ratio: ratioPtr(0.5)})
	require.NoError(t, err)

	require.Equal(t, 10, test.ActualCount, "5 planned + 2 generated + 3 backfilled")
	assert.Equal(t, 8, test.PreviousYearCount)
	assert.Equal(t, 2, test.AIGeneratedCount)
}

func TestStartTestDegradesWhenGenerationAndPoolFallShort(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 4)
	f.generator.err = ErrGenerationUnavailable

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 10, Ratio: ratioPtr(0.5)})
	require.NoError(t, err)

	require.Equal(t, 4, test.ActualCount, "everything the topic has")
	assert.Equal(t, 0, test.AIGeneratedCount)
	assert.Equal(t, 10, test.RequestedCount)
}

func TestStartTestFailsOnlyWhenNoSourceHasQuestions(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.generator.err = ErrGenerationUnavailable

	_, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 10})
	require.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestStartTestUnknownTopic(t *testing.T) {
	f := newOrchestratorFixture(t)

	_, err := f.orchestrator.StartTest(context.Background(), f.user.ID, 9999, dto.StartTestRequest{Count: 5})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStartTestSkipsGeneratorWhenRatioIsOne(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 10)

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 10, Ratio: ratioPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 0, f.generator.calls, "generator must not run for an all-previous-year mix")
	assert.Equal(t, 10, test.PreviousYearCount)
}

func TestStartTestConsumesCachedEntryExactlyOnce(t *testing.T) {
	f := newOrchestratorFixture(t)
	stored := seedPreviousYearQuestions(t, f.db, f.topic.ID, 2)
	f.generator.produce = 5

	cached := MixResult{
		Questions: []model.Question{
			stored[0],
			stored[1],
			{
				TopicID:       f.topic.ID,
				Text:          "Cached generated question",
				OptionA:       "Option A",
				OptionB:       "Option B",
				OptionC:       "Option C",
				OptionD:       "Option D",
				CorrectOption: "C",
				Source:        model.QuestionSourceAIGenerated,
				Difficulty:    "medium",
			},
		},
		PreviousYearCount: 2,
		AIGeneratedCount:  1,
		Ratio:             0.7,
		CreatedAt:         time.Now().Unix(),
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), PreGenCacheKey(f.topic.ID), payload, time.Minute))

	var questionsBefore int64
	f.db.Model(&model.Question{}).Count(&questionsBefore)

	first, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 3})
	require.NoError(t, err)
	assert.True(t, first.FromCache, "first start should be served from cache")
	assert.Equal(t, 3, first.ActualCount)

	// The cached generated question is only written to the bank when served.
	var questionsAfter int64
	f.db.Model(&model.Question{}).Count(&questionsAfter)
	assert.Equal(t, questionsBefore+1, questionsAfter, "exactly one generated question inserted on serve")

	second, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 3})
	require.NoError(t, err)
	assert.False(t, second.FromCache, "second start reused a single-use cache entry")
}

func TestStartTestTrimsOversizedCachedEntry(t *testing.T) {
	f := newOrchestratorFixture(t)
	stored := seedPreviousYearQuestions(t, f.db, f.topic.ID, 6)

	cached := MixResult{Questions: stored, PreviousYearCount: 6, AIGeneratedCount: 0, Ratio: 0.7, CreatedAt: time.Now().Unix()}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), PreGenCacheKey(f.topic.ID), payload, time.Minute))

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 4})
	require.NoError(t, err)
	assert.True(t, test.FromCache)
	assert.Equal(t, 4, test.ActualCount)
	assert.Len(t, test.Questions, 4)
}

func TestStartTestIgnoresCorruptCacheEntry(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 5)
	require.NoError(t, f.store.Set(context.Background(), PreGenCacheKey(f.topic.ID), []byte("not json"), time.Minute))

	test, err := f.orchestrator.StartTest(context.Background(), f.user.ID, f.topic.ID, dto.StartTestRequest{Count: 5, Ratio: ratioPtr(1)})
	require.NoError(t, err)
	assert.False(t, test.FromCache, "corrupt entry must not count as a cache hit")
	assert.Equal(t, 5, test.ActualCount, "live build serves the request")
}

func TestBuildMixHandsSamplesToGenerator(t *testing.T) {
	f := newOrchestratorFixture(t)
	stored := seedPreviousYearQuestions(t, f.db, f.topic.ID, 4)
	f.retriever.questions = []model.Question{stored[0], stored[1]}
	f.generator.produce = 5

	_, err := f.orchestrator.BuildMix(context.Background(), f.topic.ID, 10, 0.3)
	require.NoError(t, err)

	require.NotEmpty(t, f.generator.lastSamples, "generator received no reference samples")
	assert.Equal(t, stored[0].ID, f.generator.lastSamples[0].ID, "semantic hits should lead the sample block")
}

func TestBuildMixCountsMatchQuestionSources(t *testing.T) {
	f := newOrchestratorFixture(t)
	seedPreviousYearQuestions(t, f.db, f.topic.ID, 5)
	f.generator.produce = 5

	result, err := f.orchestrator.BuildMix(context.Background(), f.topic.ID, 10, 0.5)
	require.NoError(t, err)

	prev, ai := 0, 0
	for _, q := range result.Questions {
		switch q.Source {
		case model.QuestionSourcePreviousYear:
			prev++
		case model.QuestionSourceAIGenerated:
			ai++
		default:
			t.Errorf("unexpected source %q", q.Source)
		}
	}
	assert.Equal(t, result.PreviousYearCount, prev, "previous-year count must match the questions")
	assert.Equal(t, result.AIGeneratedCount, ai, "generated count must match the questions")
	assert.Equal(t, 10, prev+ai)
}
