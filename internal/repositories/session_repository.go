package repositories

import (
	"errors"
	"time"

	"petwork_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByToken(db *gorm.DB, token string) (*models.Session, error)
	Delete(db *gorm.DB, token string) error
	DeleteByUser(db *gorm.DB, userID string) error
	CleanExpired(db *gorm.DB) error
}

type SessionRepositoryImpl struct{}

func NewSessionRepository() SessionRepository {
	return &SessionRepositoryImpl{}
}

func (r *SessionRepositoryImpl) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) Delete(db *gorm.DB, token string) error {
	result := db.Where("token = ?", token).Delete(&models.Session{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepositoryImpl) DeleteByUser(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl) CleanExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
