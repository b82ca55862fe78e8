package dto

import "time"

// UserDTO is the caller's own profile.
type UserDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// StudySessionDTO mirrors a study session row.
type StudySessionDTO struct {
	ID             uint       `json:"id"`
	TopicID        uint       `json:"topic_id"`
	TopicName      string     `json:"topic_name,omitempty"`
	PlannedMinutes int        `json:"planned_minutes"`
	Status         string     `json:"status"`
	PreGenQueued   bool       `json:"pre_gen_queued"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}

// DashboardDTO aggregates a user's progress for the home screen.
type DashboardDTO struct {
	TestsTaken   int64                `json:"tests_taken"`
	BestScore    float64              `json:"best_score"`
	AverageScore float64              `json:"average_score"`
	StudyMinutes int64                `json:"study_minutes"`
	RecentTests  []MockTestSummaryDTO `json:"recent_tests,omitempty"`
}

// LeaderboardEntryDTO is one ranked row of the leaderboard.
type LeaderboardEntryDTO struct {
	Rank         int     `json:"rank"`
	UserName     string  `json:"user_name"`
	TestsTaken   int     `json:"tests_taken"`
	BestScore    float64 `json:"best_score"`
	AverageScore float64 `json:"average_score"`
}

// TopicDTO is a topic with its question inventory.
type TopicDTO struct {
	ID                    uint   `json:"id"`
	SubjectID             uint   `json:"subject_id"`
	Name                  string `json:"name"`
	Description           string `json:"description,omitempty"`
	PreviousYearQuestions int64  `json:"previous_year_questions"`
}
