package services

import (
	"errors"
	"strings"
	"time"

	"petwork_backend/internal/logger"
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// Update patches the profile. Adding the sitter role after the fact is
// subject to the same campus-email rule as registration.
func (s *UserService) Update(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.UserType != nil {
		wantsSitter := false
		for _, role := range req.UserType {
			if models.UserRole(role) == models.UserRoleSitter {
				wantsSitter = true
			}
		}
		if wantsSitter && !strings.HasSuffix(strings.ToLower(user.Email), sitterEmailDomain) {
			return nil, apperrors.NewBadRequestError("Pet sitters must have a nyu.edu email")
		}
		user.UserType = req.UserType
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date of birth")
		}
		user.DateOfBirth = &dob
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Qualifications != nil {
		user.Qualifications = *req.Qualifications
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("profile updated", "user_id", userID)
	return dto.NewUserResponse(user), nil
}

// Delete removes the account and everything hanging off it.
func (s *UserService) Delete(db *gorm.DB, userID string) error {
	if err := s.userRepo.Delete(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("account deleted", "user_id", userID)
	return nil
}
