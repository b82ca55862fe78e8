package service

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

type UserService interface {
	GetProfile(userID uint) (*dto.UserDTO, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.UserDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return newUserDTO(user), nil
}

func (s *userService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Msg("UpdateProfile: profile updated")
	return newUserDTO(user), nil
}

func newUserDTO(user *model.User) *dto.UserDTO {
	var userDTO dto.UserDTO
	if err := copier.Copy(&userDTO, user); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to copy user")
	}
	return &userDTO
}
