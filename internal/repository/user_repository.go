package repository

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindOrCreateByExternalID(externalID, email, name, role string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindOrCreateByExternalID lazily provisions a user row the first time a
// verified token for an unknown subject arrives.
func (r *userRepository) FindOrCreateByExternalID(externalID, email, name, role string) (*model.User, error) {
	var user model.User
	err := r.db.Where(model.User{ExternalID: externalID}).
		Attrs(model.User{Email: email, Name: name, Role: role}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}
