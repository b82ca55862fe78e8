package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type StudySessionRepository interface {
	Create(session *model.StudySession) error
	FindByID(id uint) (*model.StudySession, error)
	FindByUser(userID uint, limit int) ([]model.StudySession, error)
	Update(session *model.StudySession) error
	SumMinutesByUser(userID uint) (int64, error)
}

type studySessionRepository struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) StudySessionRepository {
	return &studySessionRepository{db: db}
}

func (r *studySessionRepository) Create(session *model.StudySession) error {
	return r.db.Create(session).Error
}

func (r *studySessionRepository) FindByID(id uint) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.Preload("Topic").First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *studySessionRepository) FindByUser(userID uint, limit int) ([]model.StudySession, error) {
	var sessions []model.StudySession
	query := r.db.Preload("Topic").Where("user_id = ?", userID).Order("started_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *studySessionRepository) Update(session *model.StudySession) error {
	return r.db.Save(session).Error
}

func (r *studySessionRepository) SumMinutesByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.StudySession{}).
		Where("user_id = ? AND status = ?", userID, model.StudySessionStatusCompleted).
		Select("COALESCE(SUM(planned_minutes), 0)").
		Scan(&total).Error
	return total, err
}
