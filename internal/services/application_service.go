package services

import (
	"encoding/json"
	"errors"

	"petwork_backend/internal/logger"
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Apply records a sitter's bid on a job. The whole submission runs in
// one transaction with the job row locked, so the precondition checks,
// the insert and the status recomputation see a consistent view even
// under concurrent applications to the same job.
//
// Preconditions are checked in a fixed order: the job must exist, the
// requester must hold the sitter role, the job must still be open, the
// requester must not be the poster, and the requester must not have
// applied before.
func (s *ApplicationService) Apply(db *gorm.DB, requesterID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	user, err := s.userRepo.FindByID(db, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var details datatypes.JSON
	if req.Details != nil {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid application details")
		}
		details = datatypes.JSON(raw)
	}

	application := &models.Application{
		JobID:   req.JobID,
		UserID:  requesterID,
		Status:  models.ApplicationStatusRejected,
		Details: details,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, req.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return apperrors.InternalError(err)
		}

		if !user.HasRole(models.UserRoleSitter) {
			return apperrors.ErrNotASitter
		}

		if job.Status != models.JobStatusOpen {
			return apperrors.ErrJobNotAvailable
		}

		if job.UserID == requesterID {
			return apperrors.ErrOwnJobApplication
		}

		applied, err := s.applicationRepo.ExistsForUserAndJob(tx, requesterID, job.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if applied {
			return apperrors.ErrAlreadyApplied
		}

		if err := s.applicationRepo.Create(tx, application); err != nil {
			if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
				return apperrors.ErrAlreadyApplied
			}
			return apperrors.InternalError(err)
		}

		if err := recomputeJobStatus(tx, s.jobRepo, s.applicationRepo, job); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("application submitted",
		"application_id", application.ID, "job_id", req.JobID, "user_id", requesterID)
	return application, nil
}

// UpdateStatus applies the poster's decision on an application. Only
// the job's poster may decide, and only while the job is still open.
// Accepting an application moves the job to acceptance_complete through
// the shared status derivation.
func (s *ApplicationService) UpdateStatus(db *gorm.DB, requesterID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if status == "" {
		return nil, apperrors.ErrMissingApplicationStatus
	}
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("Status must be 'accepted' or 'rejected'")
	}

	var application *models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		application, err = s.applicationRepo.FindByID(tx, applicationID)
		if err != nil {
			if errors.Is(err, repositories.ErrApplicationNotFound) {
				return apperrors.ErrApplicationNotFound
			}
			return apperrors.InternalError(err)
		}

		job, err := s.jobRepo.FindByIDForUpdate(tx, application.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return apperrors.InternalError(err)
		}

		if job.UserID != requesterID {
			return apperrors.ErrNotJobPoster
		}

		if job.Status != models.JobStatusOpen {
			return apperrors.ErrJobNotOpenForUpdate
		}

		if err := s.applicationRepo.UpdateStatus(tx, application.ID, status); err != nil {
			return apperrors.InternalError(err)
		}
		application.Status = status

		if err := recomputeJobStatus(tx, s.jobRepo, s.applicationRepo, job); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("application decided",
		"application_id", applicationID, "status", status, "user_id", requesterID)
	return application, nil
}

// ListForJob returns a job's applications to its poster.
func (s *ApplicationService) ListForJob(db *gorm.DB, requesterID, jobID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("Only the job poster can view its applications")
	}

	applications, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListForUser returns the requester's own applications.
func (s *ApplicationService) ListForUser(db *gorm.DB, requesterID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByUser(db, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}
