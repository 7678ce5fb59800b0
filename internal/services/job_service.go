package services

import (
	"errors"

	"petwork_backend/internal/logger"
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService struct {
	jobRepo      repositories.JobRepository
	petRepo      repositories.PetRepository
	locationRepo repositories.LocationRepository
	userRepo     repositories.UserRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	petRepo repositories.PetRepository,
	locationRepo repositories.LocationRepository,
	userRepo repositories.UserRepository,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		petRepo:      petRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

// Create posts a new job. The pet and location must both belong to the
// poster, and only users with the owner role can post.
func (s *JobService) Create(db *gorm.DB, requesterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	user, err := s.userRepo.FindByID(db, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.HasRole(models.UserRoleOwner) {
		return nil, apperrors.NewForbiddenError("Only pet owners can post jobs")
	}

	pet, err := s.petRepo.FindByID(db, req.PetID)
	if err != nil {
		if errors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrPetNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if pet.OwnerID != requesterID {
		return nil, apperrors.ErrNotPetOwner
	}

	location, err := s.locationRepo.FindByID(db, req.LocationID)
	if err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if location.UserID != requesterID {
		return nil, apperrors.ErrNotLocationOwner
	}

	if !req.End.After(req.Start) {
		return nil, apperrors.NewBadRequestError("End time must be after start time")
	}

	job := &models.Job{
		UserID:     requesterID,
		PetID:      req.PetID,
		LocationID: req.LocationID,
		Status:     models.JobStatusOpen,
		Pay:        req.Pay,
		Start:      req.Start,
		End:        req.End,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		if errors.Is(err, repositories.ErrJobAlreadyExists) {
			return nil, apperrors.ErrDuplicateJob
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job posted", "job_id", job.ID, "user_id", requesterID)

	created, err := s.jobRepo.FindByID(db, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}

func (s *JobService) Get(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// List returns both sides of the marketplace view for the requester:
// jobs they posted, and open jobs from other posters they could apply
// to. Either slice may be empty depending on the requester's roles.
func (s *JobService) List(db *gorm.DB, requesterID string) (*dto.JobListResponse, error) {
	user, err := s.userRepo.FindByID(db, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.JobListResponse{
		OwnerJobs:      []models.Job{},
		SitterOpenJobs: []models.Job{},
	}

	if user.HasRole(models.UserRoleOwner) {
		jobs, err := s.jobRepo.FindByPoster(db, requesterID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.OwnerJobs = jobs
	}

	if user.HasRole(models.UserRoleSitter) {
		jobs, err := s.jobRepo.FindOpenExcludingPoster(db, requesterID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.SitterOpenJobs = jobs
	}

	return resp, nil
}

// UpdateStatus lets the poster move a job into an explicit state, for
// example starting, completing or cancelling it. Derived states are
// managed by the application flow, but the poster may also confirm
// acceptance_complete directly after accepting a sitter.
func (s *JobService) UpdateStatus(db *gorm.DB, requesterID, jobID string, status models.JobStatus) (*models.Job, error) {
	if status == "" {
		return nil, apperrors.NewBadRequestError("New status is required for the update")
	}
	if !status.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid job status")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, jobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return apperrors.InternalError(err)
		}

		if job.UserID != requesterID {
			return apperrors.ErrNotJobPoster
		}

		if err := s.jobRepo.UpdateStatus(tx, job.ID, status); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("job status updated", "job_id", jobID, "status", status)

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Delete soft-removes a job by marking it removed. Applications stay in
// place for record keeping.
func (s *JobService) Delete(db *gorm.DB, requesterID, jobID string) error {
	_, err := s.UpdateStatus(db, requesterID, jobID, models.JobStatusRemoved)
	return err
}
