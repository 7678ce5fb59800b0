package services

import (
	"testing"

	"petwork_backend/internal/models"
	"petwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_UpdateStatusRequiresValue(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo(), newFakeUserRepo())

	_, err := svc.UpdateStatus(nil, "poster", "app-id", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingApplicationStatus)

	_, err = svc.UpdateStatus(nil, "poster", "app-id", "maybe")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestApplicationService_ListForJobIsPosterOnly(t *testing.T) {
	poster := &models.User{Email: "poster@example.com", UserType: []string{"owner"}}
	userRepo := newFakeUserRepo(poster)

	job := &models.Job{UserID: poster.ID, Status: models.JobStatusOpen}
	jobRepo := newFakeJobRepo(job)

	applicationRepo := newFakeApplicationRepo(&models.Application{
		JobID:  job.ID,
		UserID: "sitter",
		Status: models.ApplicationStatusRejected,
	})

	svc := NewApplicationService(applicationRepo, jobRepo, userRepo)

	applications, err := svc.ListForJob(nil, poster.ID, job.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	_, err = svc.ListForJob(nil, "somebody-else", job.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = svc.ListForJob(nil, poster.ID, "missing-job")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplicationService_ListForUser(t *testing.T) {
	applicationRepo := newFakeApplicationRepo(
		&models.Application{JobID: "job-1", UserID: "sitter-1", Status: models.ApplicationStatusRejected},
		&models.Application{JobID: "job-2", UserID: "sitter-1", Status: models.ApplicationStatusAccepted},
		&models.Application{JobID: "job-1", UserID: "sitter-2", Status: models.ApplicationStatusRejected},
	)
	svc := NewApplicationService(applicationRepo, newFakeJobRepo(), newFakeUserRepo())

	applications, err := svc.ListForUser(nil, "sitter-1")
	require.NoError(t, err)
	assert.Len(t, applications, 2)
}
