package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	CreateBatch(questions []model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindRandomByTopic(topicID uint, limit int, excludeIDs []uint) ([]model.Question, error)
	FindByTopicAndSource(topicID uint, source string) ([]model.Question, error)
	CountByTopicAndSource(topicID uint, source string) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindRandomByTopic samples previous year questions without replacement.
// Fewer rows than limit is not an error.
func (r *questionRepository) FindRandomByTopic(topicID uint, limit int, excludeIDs []uint) ([]model.Question, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := r.db.Where("topic_id = ? AND source = ?", topicID, model.QuestionSourcePreviousYear)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	var questions []model.Question
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTopicAndSource(topicID uint, source string) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Where("topic_id = ?", topicID)
	if source != "" {
		query = query.Where("source = ?", source)
	}
	if err := query.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByTopicAndSource(topicID uint, source string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("topic_id = ? AND source = ?", topicID, source).Count(&count).Error
	return count, err
}
