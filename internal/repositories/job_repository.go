package repositories

import (
	"errors"
	"time"

	"petwork_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobAlreadyExists = errors.New("job already exists")
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	// FindByIDForUpdate locks the job row for the rest of the
	// enclosing transaction. Used by the lifecycle engine so two
	// concurrent mutations serialize on the job.
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error)
	FindByPoster(db *gorm.DB, userID string) ([]models.Job, error)
	FindOpenExcludingPoster(db *gorm.DB, userID string) ([]models.Job, error)
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	err := db.Create(job).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrJobAlreadyExists
	}
	return err
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Pet").Preload("Location").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByPoster(db *gorm.DB, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Pet").Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindOpenExcludingPoster(db *gorm.DB, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Pet").Preload("Location").
		Where("status = ? AND user_id != ?", models.JobStatusOpen, userID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
