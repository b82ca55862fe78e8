package dto

// StartTestRequest configures a mock test for the topic in the URL.
type StartTestRequest struct {
	Count int      `json:"count" binding:"required,min=1,max=50"`
	Ratio *float64 `json:"ratio" binding:"omitempty,min=0,max=1"` // previous year share, defaults from config
}

// AnswerSubmission is one selected option within a test submission.
type AnswerSubmission struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"required,oneof=A B C D"`
}

// SubmitTestRequest carries all answers of a mock test submission.
type SubmitTestRequest struct {
	Answers []AnswerSubmission `json:"answers" binding:"required,min=1,dive"`
}

// StartStudySessionRequest opens a study session on a topic.
type StartStudySessionRequest struct {
	TopicID        uint `json:"topic_id" binding:"required"`
	PlannedMinutes int  `json:"planned_minutes" binding:"required,min=1,max=600"`
}

// UpdateProfileRequest edits the caller's display fields.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}
