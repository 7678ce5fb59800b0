package services

import (
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"

	"gorm.io/gorm"
)

// applicationVolumeLimit is the application count at which a job stops
// taking new applications.
const applicationVolumeLimit = 10

// deriveJobStatus is the single rule for the derived job states. Both
// the submission path and the decision path go through it, so the two
// can never disagree: an accepted application always wins, otherwise
// the status follows application volume.
func deriveJobStatus(applicationCount int64, hasAccepted bool) models.JobStatus {
	if hasAccepted {
		return models.JobStatusAcceptanceDone
	}

	switch {
	case applicationCount < applicationVolumeLimit:
		return models.JobStatusOpen
	case applicationCount == applicationVolumeLimit:
		return models.JobStatusAcceptanceDone
	default:
		return models.JobStatusAcceptancePending
	}
}

// recomputeJobStatus re-derives and persists the job's status. Jobs in
// an explicit state (ongoing, complete, cancelled, removed) are left
// alone. Callers run it inside the transaction that mutated the
// job's applications, with the job row already locked.
func recomputeJobStatus(
	tx *gorm.DB,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	job *models.Job,
) error {
	if !job.Status.Derived() {
		return nil
	}

	count, err := applicationRepo.CountByJob(tx, job.ID)
	if err != nil {
		return err
	}

	hasAccepted, err := applicationRepo.ExistsAcceptedForJob(tx, job.ID)
	if err != nil {
		return err
	}

	next := deriveJobStatus(count, hasAccepted)
	if next == job.Status {
		return nil
	}

	job.Status = next
	return jobRepo.UpdateStatus(tx, job.ID, next)
}
