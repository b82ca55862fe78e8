package dto

// CreateExamRequest is for admins to add an exam to the catalog.
type CreateExamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

// CreateSubjectRequest adds a subject under an exam.
type CreateSubjectRequest struct {
	ExamID uint   `json:"exam_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// CreateTopicRequest adds a topic under a subject. The description feeds
// semantic retrieval, so a couple of sentences about scope helps.
type CreateTopicRequest struct {
	SubjectID   uint   `json:"subject_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

// ImportQuestionDTO is one previous year question in a bulk import. Rows
// are validated individually at import time so one bad row does not fail
// the batch; binding only checks the envelope.
type ImportQuestionDTO struct {
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	Year          *int   `json:"year,omitempty"`
}

// ImportQuestionsRequest bulk imports previous year questions into a topic.
type ImportQuestionsRequest struct {
	TopicID   uint                `json:"topic_id" binding:"required"`
	Questions []ImportQuestionDTO `json:"questions" binding:"required,min=1"`
}

// ImportRejection explains why one row of an import was skipped.
type ImportRejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResultDTO summarizes a bulk import.
type ImportResultDTO struct {
	Imported   int               `json:"imported"`
	Rejected   int               `json:"rejected"`
	Rejections []ImportRejection `json:"rejections,omitempty"`
}
