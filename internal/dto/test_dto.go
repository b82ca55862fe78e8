package dto

import "time"

// MockTestQuestionDTO is a question as shown to a candidate taking a test.
// Correct option, explanation and per-question outcome are withheld until
// the test has been submitted.
type MockTestQuestionDTO struct {
	QuestionID     uint    `json:"question_id"`
	Position       int     `json:"position"`
	Text           string  `json:"text"`
	OptionA        string  `json:"option_a"`
	OptionB        string  `json:"option_b"`
	OptionC        string  `json:"option_c"`
	OptionD        string  `json:"option_d"`
	Source         string  `json:"source"`
	Difficulty     string  `json:"difficulty"`
	SelectedOption *string `json:"selected_option,omitempty"`
	CorrectOption  string  `json:"correct_option,omitempty"`
	Correct        *bool   `json:"correct,omitempty"`
	Explanation    string  `json:"explanation,omitempty"`
}

// MockTestDTO is the full test payload returned when a test is started or fetched.
type MockTestDTO struct {
	PublicID          string                `json:"public_id"`
	TopicID           uint                  `json:"topic_id"`
	TopicName         string                `json:"topic_name,omitempty"`
	RequestedCount    int                   `json:"requested_count"`
	ActualCount       int                   `json:"actual_count"`
	PreviousYearCount int                   `json:"previous_year_count"`
	AIGeneratedCount  int                   `json:"ai_generated_count"`
	Ratio             float64               `json:"ratio"`
	FromCache         bool                  `json:"from_cache"`
	Status            string                `json:"status"`
	Score             *float64              `json:"score,omitempty"`
	Grade             *string               `json:"grade,omitempty"`
	Questions         []MockTestQuestionDTO `json:"questions,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

// MockTestSummaryDTO is used for listing a user's tests.
type MockTestSummaryDTO struct {
	PublicID    string     `json:"public_id"`
	TopicID     uint       `json:"topic_id"`
	TopicName   string     `json:"topic_name,omitempty"`
	ActualCount int        `json:"actual_count"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score,omitempty"`
	Grade       *string    `json:"grade,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AnswerResultDTO is the per-question outcome revealed after submission.
type AnswerResultDTO struct {
	QuestionID     uint    `json:"question_id"`
	Position       int     `json:"position"`
	Text           string  `json:"text"`
	SelectedOption *string `json:"selected_option,omitempty"`
	CorrectOption  string  `json:"correct_option"`
	Correct        bool    `json:"correct"`
	Explanation    string  `json:"explanation,omitempty"`
}

// SubmissionResultDTO is returned after scoring a submitted test.
type SubmissionResultDTO struct {
	PublicID     string            `json:"public_id"`
	Score        float64           `json:"score"` // percent
	Grade        string            `json:"grade"`
	CorrectCount int               `json:"correct_count"`
	TotalCount   int               `json:"total_count"`
	Answers      []AnswerResultDTO `json:"answers"`
}
