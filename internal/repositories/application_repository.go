package repositories

import (
	"errors"
	"time"

	"petwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Application, error)
	ExistsForUserAndJob(db *gorm.DB, userID, jobID string) (bool, error)
	CountByJob(db *gorm.DB, jobID string) (int64, error)
	ExistsAcceptedForJob(db *gorm.DB, jobID string) (bool, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	err := db.Create(application).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// The (user_id, job_id) constraint is the source of truth for
		// the "already applied" rule.
		return ErrApplicationAlreadyExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("User").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("User").
		Where("job_id = ?", jobID).
		Order("created_at ASC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ExistsForUserAndJob(db *gorm.DB, userID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) ExistsAcceptedForJob(db *gorm.DB, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND status = ?", jobID, models.ApplicationStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
