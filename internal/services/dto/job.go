package dto

import (
	"time"

	"petwork_backend/internal/models"
)

type CreateJobRequest struct {
	PetID      string    `json:"pet_id" validate:"required,uuid"`
	LocationID string    `json:"location_id" validate:"required,uuid"`
	Pay        float64   `json:"pay" validate:"required,gt=0"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required"`
}

type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required"`
}

// JobListResponse splits the listing by the caller's role: jobs the
// caller posted, and open jobs from other users a sitter can apply to.
type JobListResponse struct {
	OwnerJobs      []models.Job `json:"owner_jobs"`
	SitterOpenJobs []models.Job `json:"sitter_open_jobs"`
}
