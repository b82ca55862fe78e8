package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(topic *model.Topic) error
	FindByID(id uint) (*model.Topic, error)
	FindBySubject(subjectID uint) ([]model.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *model.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindBySubject(subjectID uint) ([]model.Topic, error) {
	var topics []model.Topic
	if err := r.db.Where("subject_id = ?", subjectID).Order("name asc").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
