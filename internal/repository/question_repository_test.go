package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Subject{},
		&model.Topic{},
		&model.Question{},
		&model.MockTest{},
		&model.MockTestQuestion{},
		&model.StudySession{},
		&model.LeaderboardEntry{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedQuestions(t *testing.T, repo QuestionRepository, topicID uint, source string, n int) []model.Question {
	t.Helper()
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			TopicID:       topicID,
			Text:          fmt.Sprintf("%s question %d", source, i),
			OptionA:       "option a",
			OptionB:       "option b",
			OptionC:       "option c",
			OptionD:       "option d",
			CorrectOption: "A",
			Source:        source,
			Difficulty:    "medium",
		})
	}
	if err := repo.CreateBatch(questions); err != nil {
		t.Fatalf("failed to seed questions: %v", err)
	}
	return questions
}

func TestFindRandomByTopicRespectsLimit(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, 1, "previous_year", 10)

	got, err := repo.FindRandomByTopic(1, 4, nil)
	require.NoError(t, err)
	require.Len(t, got, 4)

	seen := make(map[uint]bool)
	for _, q := range got {
		assert.Equal(t, "previous_year", q.Source)
		assert.False(t, seen[q.ID], "duplicate question id %d in sample", q.ID)
		seen[q.ID] = true
	}
}

func TestFindRandomByTopicShortPool(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, 1, "previous_year", 3)

	got, err := repo.FindRandomByTopic(1, 10, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3, "a short pool returns everything available")
}

func TestFindRandomByTopicExcludesIDs(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seeded := seedQuestions(t, repo, 1, "previous_year", 5)

	exclude := []uint{seeded[0].ID, seeded[1].ID}
	got, err := repo.FindRandomByTopic(1, 10, exclude)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, q := range got {
		assert.NotContains(t, exclude, q.ID)
	}
}

func TestFindRandomByTopicFiltersSourceAndTopic(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, 1, "previous_year", 3)
	seedQuestions(t, repo, 1, "ai_generated", 3)
	seedQuestions(t, repo, 2, "previous_year", 3)

	got, err := repo.FindRandomByTopic(1, 20, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, q := range got {
		assert.Equal(t, uint(1), q.TopicID)
		assert.Equal(t, "previous_year", q.Source)
	}
}

func TestFindRandomByTopicZeroLimit(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, 1, "previous_year", 3)

	got, err := repo.FindRandomByTopic(1, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountByTopicAndSource(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, 1, "previous_year", 4)
	seedQuestions(t, repo, 1, "ai_generated", 2)

	count, err := repo.CountByTopicAndSource(1, "previous_year")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestFindByIDs(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	seeded := seedQuestions(t, repo, 1, "previous_year", 5)

	got, err := repo.FindByIDs([]uint{seeded[0].ID, seeded[2].ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, got, "empty id list must return no questions")
}
