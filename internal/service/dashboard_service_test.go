package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

func newDashboardFixture(t *testing.T) (*gorm.DB, DashboardService, repository.LeaderboardRepository) {
	t.Helper()
	db := newTestDB(t)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	svc := NewDashboardService(
		repository.NewMockTestRepository(db),
		leaderboardRepo,
		repository.NewStudySessionRepository(db),
	)
	return db, svc, leaderboardRepo
}

func seedNamedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := model.User{
		ExternalID: fmt.Sprintf("ext-%s-%d", name, time.Now().UnixNano()),
		Name:       name,
		Role:       "student",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return &user
}

func seedStudySession(t *testing.T, db *gorm.DB, userID, topicID uint, minutes int, status string) {
	t.Helper()
	session := model.StudySession{
		UserID:         userID,
		TopicID:        topicID,
		PlannedMinutes: minutes,
		Status:         status,
		StartedAt:      time.Now().Add(-time.Hour),
	}
	if status == model.StudySessionStatusCompleted {
		now := time.Now()
		session.EndedAt = &now
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("failed to seed study session: %v", err)
	}
}

func TestGetDashboardAggregatesProgress(t *testing.T) {
	db, svc, leaderboardRepo := newDashboardFixture(t)
	user := seedUser(t, db)
	topic := seedTopicTree(t, db)
	questions := seedPreviousYearQuestions(t, db, topic.ID, 2)

	seedMockTest(t, db, user.ID, topic.ID, questions)
	seedMockTest(t, db, user.ID, topic.ID, questions)
	require.NoError(t, leaderboardRepo.RecordScore(user.ID, 100))
	require.NoError(t, leaderboardRepo.RecordScore(user.ID, 50))
	seedStudySession(t, db, user.ID, topic.ID, 30, model.StudySessionStatusCompleted)
	seedStudySession(t, db, user.ID, topic.ID, 45, model.StudySessionStatusActive)

	dashboard, err := svc.GetDashboard(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), dashboard.TestsTaken)
	assert.Equal(t, float64(100), dashboard.BestScore)
	assert.Equal(t, float64(75), dashboard.AverageScore)
	assert.Equal(t, int64(30), dashboard.StudyMinutes, "only the completed session counts")
	require.Len(t, dashboard.RecentTests, 2)
	assert.Equal(t, topic.Name, dashboard.RecentTests[0].TopicName)
}

func TestGetDashboardForNewUser(t *testing.T) {
	db, svc, _ := newDashboardFixture(t)
	user := seedUser(t, db)

	dashboard, err := svc.GetDashboard(user.ID)
	require.NoError(t, err)

	assert.Zero(t, dashboard.TestsTaken)
	assert.Zero(t, dashboard.BestScore)
	assert.Zero(t, dashboard.AverageScore)
	assert.Zero(t, dashboard.StudyMinutes)
	assert.Empty(t, dashboard.RecentTests)
}

func TestGetLeaderboardOrdersByBestScore(t *testing.T) {
	db, svc, leaderboardRepo := newDashboardFixture(t)
	asha := seedNamedUser(t, db, "Asha")
	vikram := seedNamedUser(t, db, "Vikram")
	meera := seedNamedUser(t, db, "Meera")

	require.NoError(t, leaderboardRepo.RecordScore(asha.ID, 95))
	require.NoError(t, leaderboardRepo.RecordScore(vikram.ID, 80))
	require.NoError(t, leaderboardRepo.RecordScore(meera.ID, 60))

	entries, err := svc.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	wantNames := []string{"Asha", "Vikram", "Meera"}
	for i, entry := range entries {
		assert.Equal(t, wantNames[i], entry.UserName, "entry %d", i)
		// Ranks fall back to list order until the hourly recompute runs.
		assert.Equal(t, i+1, entry.Rank, "entry %d", i)
	}

	require.NoError(t, leaderboardRepo.RecomputeRanks())
	entries, err = svc.GetLeaderboard(10)
	require.NoError(t, err)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank, "entry %d after recompute", i)
	}

	limited, err := svc.GetLeaderboard(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
