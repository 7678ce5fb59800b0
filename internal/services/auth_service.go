package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"petwork_backend/internal/auth"
	"petwork_backend/internal/email"
	"petwork_backend/internal/logger"
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sitterEmailDomain restricts the sitter role to campus accounts.
const sitterEmailDomain = "nyu.edu"

type AuthConfig struct {
	SessionTTL    time.Duration
	ResetSecret   string
	ResetTokenTTL time.Duration
	ResetURLBase  string
}

type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	emails      email.Provider
	cfg         AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	emails email.Provider,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		emails:      emails,
		cfg:         cfg,
	}
}

// Register creates a new account. A user may hold the owner role, the
// sitter role, or both; the sitter role additionally requires a campus
// email address.
func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	wantsSitter := false
	for _, role := range req.UserType {
		if models.UserRole(role) == models.UserRoleSitter {
			wantsSitter = true
		}
	}
	if wantsSitter && !strings.HasSuffix(strings.ToLower(req.Email), sitterEmailDomain) {
		return nil, apperrors.NewBadRequestError("Pet sitters must have a nyu.edu email")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date of birth")
	}

	user := &models.User{
		Email:          strings.ToLower(req.Email),
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		UserType:       req.UserType,
		DateOfBirth:    &dob,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "roles", user.UserType)
	return user, nil
}

// Login verifies credentials and opens a session. The returned token is
// what the handler sets as the session cookie.
func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	session := &models.Session{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	logger.Info("user logged in", "user_id", user.ID)
	return user, session.Token, nil
}

// Logout drops the session behind the given token. An unknown token is
// not an error; logout is idempotent.
func (s *AuthService) Logout(db *gorm.DB, token string) error {
	if err := s.sessionRepo.Delete(db, token); err != nil &&
		!errors.Is(err, repositories.ErrSessionNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// Authenticate resolves a session token to its user. Expired sessions
// are removed on sight.
func (s *AuthService) Authenticate(db *gorm.DB, token string) (*models.User, error) {
	session, err := s.sessionRepo.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	if session.Expired() {
		_ = s.sessionRepo.Delete(db, token)
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByID(db, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// RequestPasswordReset issues a reset token and mails it to the user.
// The response is the same whether or not the address is registered, so
// the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(emailAddr))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Debug("password reset for unknown email", "email", emailAddr)
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.NewResetToken(s.cfg.ResetSecret, user.ID, s.cfg.ResetTokenTTL)
	if err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", s.cfg.ResetURLBase, token)
	msg := &email.Email{
		To:      []string{user.Email},
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Hi %s,\n\nUse the link below to reset your password. It expires in %d hours.\n\n%s\n\nIf you did not request this, you can ignore this email.\n",
			user.FirstName, int(s.cfg.ResetTokenTTL.Hours()), resetURL),
	}
	if err := s.emails.Send(msg); err != nil {
		logger.Error("password reset email failed", "user_id", user.ID, "error", err)
		return apperrors.InternalError(err)
	}

	logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token and sets a new password. All of
// the user's sessions are dropped so stolen cookies stop working.
func (s *AuthService) ResetPassword(db *gorm.DB, req *dto.PasswordResetConfirmRequest) error {
	userID, err := auth.ParseResetToken(s.cfg.ResetSecret, req.Token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePassword(tx, userID, hash); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrInvalidResetToken
			}
			return apperrors.InternalError(err)
		}
		if err := s.sessionRepo.DeleteByUser(tx, userID); err != nil {
			return apperrors.InternalError(err)
		}
		logger.Info("password reset completed", "user_id", userID)
		return nil
	})
}
