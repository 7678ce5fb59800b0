package dto

import (
	"time"

	"petwork_backend/internal/models"
)

// UserResponse is the profile payload for /api/user.
type UserResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	UserType       []string   `json:"user_type"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Experience     string     `json:"experience,omitempty"`
	Qualifications string     `json:"qualifications,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		UserType:       user.UserType,
		ProfilePicture: user.ProfilePicture,
		DateOfBirth:    user.DateOfBirth,
		Experience:     user.Experience,
		Qualifications: user.Qualifications,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

type UpdateUserRequest struct {
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       *string  `json:"last_name,omitempty"`
	UserType       []string `json:"user_type,omitempty" validate:"omitempty,min=1,max=2,dive,oneof=owner sitter"`
	DateOfBirth    *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Experience     *string  `json:"experience,omitempty"`
	Qualifications *string  `json:"qualifications,omitempty"`
}
