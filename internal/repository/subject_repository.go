package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	FindByExam(examID uint) ([]model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindByExam(examID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.Where("exam_id = ?", examID).Order("name asc").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}
