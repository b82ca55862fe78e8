package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type MockTestRepository interface {
	Create(test *model.MockTest) error
	FindByID(id uint) (*model.MockTest, error)
	FindByPublicID(publicID string) (*model.MockTest, error)
	FindByUser(userID uint, limit int) ([]model.MockTest, error)
	CountByUser(userID uint) (int64, error)
}

type mockTestRepository struct {
	db *gorm.DB
}

func NewMockTestRepository(db *gorm.DB) MockTestRepository {
	return &mockTestRepository{db: db}
}

func (r *mockTestRepository) Create(test *model.MockTest) error {
	return r.db.Create(test).Error
}

func (r *mockTestRepository) FindByID(id uint) (*model.MockTest, error) {
	var test model.MockTest
	if err := r.db.Preload("Topic").Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Questions.Question").First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *mockTestRepository) FindByPublicID(publicID string) (*model.MockTest, error) {
	var test model.MockTest
	if err := r.db.Preload("Topic").Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Questions.Question").Where("public_id = ?", publicID).First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *mockTestRepository) FindByUser(userID uint, limit int) ([]model.MockTest, error) {
	var tests []model.MockTest
	query := r.db.Preload("Topic").Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *mockTestRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.MockTest{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
