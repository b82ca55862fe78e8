package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

// ContentService manages the exam, subject and topic catalog and the
// previous year question bank behind it.
type ContentService interface {
	CreateExam(req dto.CreateExamRequest) (*model.Exam, error)
	CreateSubject(req dto.CreateSubjectRequest) (*model.Subject, error)
	CreateTopic(req dto.CreateTopicRequest) (*model.Topic, error)
	ListExams() ([]model.Exam, error)
	ListSubjects(examID uint) ([]model.Subject, error)
	ListTopics(subjectID uint) ([]dto.TopicDTO, error)
	GetTopic(topicID uint) (*dto.TopicDTO, error)
	ImportQuestions(req dto.ImportQuestionsRequest) (*dto.ImportResultDTO, error)
	ListQuestions(topicID uint, source string) ([]model.Question, error)
}

type contentService struct {
	examRepo     repository.ExamRepository
	subjectRepo  repository.SubjectRepository
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
}

func NewContentService(
	examRepo repository.ExamRepository,
	subjectRepo repository.SubjectRepository,
	topicRepo repository.TopicRepository,
	questionRepo repository.QuestionRepository,
) ContentService {
	return &contentService{
		examRepo:     examRepo,
		subjectRepo:  subjectRepo,
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
	}
}

func (s *contentService) CreateExam(req dto.CreateExamRequest) (*model.Exam, error) {
	exam := model.Exam{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if exam.Name == "" {
		return nil, fmt.Errorf("exam name must not be empty")
	}
	if err := s.examRepo.Create(&exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}
	log.Info().Uint("examID", exam.ID).Str("name", exam.Name).Msg("CreateExam: exam created")
	return &exam, nil
}

func (s *contentService) CreateSubject(req dto.CreateSubjectRequest) (*model.Subject, error) {
	if _, err := s.examRepo.FindByID(req.ExamID); err != nil {
		return nil, err
	}

	subject := model.Subject{
		ExamID: req.ExamID,
		Name:   strings.TrimSpace(req.Name),
	}
	if subject.Name == "" {
		return nil, fmt.Errorf("subject name must not be empty")
	}
	if err := s.subjectRepo.Create(&subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	log.Info().Uint("subjectID", subject.ID).Uint("examID", subject.ExamID).Str("name", subject.Name).Msg("CreateSubject: subject created")
	return &subject, nil
}

func (s *contentService) CreateTopic(req dto.CreateTopicRequest) (*model.Topic, error) {
	if _, err := s.subjectRepo.FindByID(req.SubjectID); err != nil {
		return nil, err
	}

	topic := model.Topic{
		SubjectID:   req.SubjectID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if topic.Name == "" {
		return nil, fmt.Errorf("topic name must not be empty")
	}
	if err := s.topicRepo.Create(&topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	log.Info().Uint("topicID", topic.ID).Uint("subjectID", topic.SubjectID).Str("name", topic.Name).Msg("CreateTopic: topic created")
	return &topic, nil
}

func (s *contentService) ListExams() ([]model.Exam, error) {
	return s.examRepo.FindAll()
}

func (s *contentService) ListSubjects(examID uint) ([]model.Subject, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		return nil, err
	}
	return s.subjectRepo.FindByExam(examID)
}

func (s *contentService) ListTopics(subjectID uint) ([]dto.TopicDTO, error) {
	if _, err := s.subjectRepo.FindByID(subjectID); err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TopicDTO, 0, len(topics))
	for i := range topics {
		result = append(result, s.topicDTO(&topics[i]))
	}
	return result, nil
}

func (s *contentService) GetTopic(topicID uint) (*dto.TopicDTO, error) {
	topic, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	topicDTO := s.topicDTO(topic)
	return &topicDTO, nil
}

func (s *contentService) topicDTO(topic *model.Topic) dto.TopicDTO {
	count, err := s.questionRepo.CountByTopicAndSource(topic.ID, model.QuestionSourcePreviousYear)
	if err != nil {
		log.Warn().Err(err).Uint("topicID", topic.ID).Msg("topicDTO: failed to count questions")
	}
	return dto.TopicDTO{
		ID:                    topic.ID,
		SubjectID:             topic.SubjectID,
		Name:                  topic.Name,
		Description:           topic.Description,
		PreviousYearQuestions: count,
	}
}

// ImportQuestions bulk loads previous year questions into a topic. Rows
// are validated one by one; a bad row is rejected with a reason instead
// of failing the whole batch.
func (s *contentService) ImportQuestions(req dto.ImportQuestionsRequest) (*dto.ImportResultDTO, error) {
	// 1. Verify the target topic exists.
	if _, err := s.topicRepo.FindByID(req.TopicID); err != nil {
		return nil, err
	}

	// 2. Validate each row, keeping the good ones.
	valid := make([]model.Question, 0, len(req.Questions))
	rejections := make([]dto.ImportRejection, 0)
	for i, row := range req.Questions {
		question, reason := buildImportedQuestion(req.TopicID, row)
		if reason != "" {
			rejections = append(rejections, dto.ImportRejection{Index: i, Reason: reason})
			continue
		}
		valid = append(valid, question)
	}

	// 3. Persist the valid rows in one batch.
	if len(valid) > 0 {
		if err := s.questionRepo.CreateBatch(valid); err != nil {
			return nil, fmt.Errorf("failed to import questions: %w", err)
		}
	}

	log.Info().
		Uint("topicID", req.TopicID).
		Int("imported", len(valid)).
		Int("rejected", len(rejections)).
		Msg("ImportQuestions: import finished")

	return &dto.ImportResultDTO{
		Imported:   len(valid),
		Rejected:   len(rejections),
		Rejections: rejections,
	}, nil
}

func (s *contentService) ListQuestions(topicID uint, source string) ([]model.Question, error) {
	if _, err := s.topicRepo.FindByID(topicID); err != nil {
		return nil, err
	}
	return s.questionRepo.FindByTopicAndSource(topicID, source)
}

// buildImportedQuestion validates one import row. The returned reason is
// empty when the row is acceptable.
func buildImportedQuestion(topicID uint, row dto.ImportQuestionDTO) (model.Question, string) {
	text := strings.TrimSpace(row.Text)
	if text == "" {
		return model.Question{}, "question text is empty"
	}
	options := []string{row.OptionA, row.OptionB, row.OptionC, row.OptionD}
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			return model.Question{}, "all four options are required"
		}
	}
	correct := strings.ToUpper(strings.TrimSpace(row.CorrectOption))
	if correct != "A" && correct != "B" && correct != "C" && correct != "D" {
		return model.Question{}, fmt.Sprintf("correct_option %q is not one of A, B, C, D", row.CorrectOption)
	}
	difficulty := strings.ToLower(strings.TrimSpace(row.Difficulty))
	if difficulty == "" {
		difficulty = "medium"
	}
	if difficulty != "easy" && difficulty != "medium" && difficulty != "hard" {
		return model.Question{}, fmt.Sprintf("difficulty %q is not one of easy, medium, hard", row.Difficulty)
	}

	return model.Question{
		TopicID:       topicID,
		Text:          text,
		OptionA:       strings.TrimSpace(row.OptionA),
		OptionB:       strings.TrimSpace(row.OptionB),
		OptionC:       strings.TrimSpace(row.OptionC),
		OptionD:       strings.TrimSpace(row.OptionD),
		CorrectOption: correct,
		Explanation:   row.Explanation,
		Source:        model.QuestionSourcePreviousYear,
		Difficulty:    difficulty,
		Year:          row.Year,
	}, ""
}
