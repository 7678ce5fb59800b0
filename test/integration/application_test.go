package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petwork_backend/internal/models"
	"petwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyToJob(t *testing.T, ts *helpers.TestServer, session, jobID string) (*http.Response, string) {
	return ts.SendRequest(t, http.MethodPost, "/api/applications", session, map[string]interface{}{
		"job_id":  jobID,
		"details": map[string]interface{}{"message": "Happy to help!"},
	})
}

func TestApplication_SubmitAndList(t *testing.T) {
	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginOwner(t, ts)
	sitterSession, sitter := helpers.CreateAndLoginSitter(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, body := applyToJob(t, ts, sitterSession, job.ID)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var stored models.Application
	require.NoError(t, ts.DB.First(&stored, "job_id = ? AND user_id = ?", job.ID, sitter.ID).Error)
	assert.Equal(t, models.ApplicationStatusRejected, stored.Status,
		"new applications start in the undecided status")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/applications", sitterSession, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, job.ID)
}

func TestApplication_PreconditionOrder(t *testing.T) {
	ts := GetTestServer(t)
	ownerSession, owner := helpers.CreateAndLoginOwner(t, ts)
	sitterSession, _ := helpers.CreateAndLoginSitter(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	// Unknown job wins over everything else.
	res, body := applyToJob(t, ts, sitterSession, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Job not found")

	// Role check: an owner-only account cannot apply even to an
	// open job.
	res, body = applyToJob(t, ts, ownerSession, job.ID)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Only pet sitters can apply for jobs")

	// Closed job.
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).
		Update("status", models.JobStatusCancelled).Error)
	res, body = applyToJob(t, ts, sitterSession, job.ID)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "This job is no longer available")
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).
		Update("status", models.JobStatusOpen).Error)

	// Duplicate application.
	res, _ = applyToJob(t, ts, sitterSession, job.ID)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	res, body = applyToJob(t, ts, sitterSession, job.ID)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "You have already applied for this job")
}

func TestApplication_PosterCannotApplyToOwnJob(t *testing.T) {
	ts := GetTestServer(t)

	// The poster holds both roles with a campus email, so only the
	// self-application rule can reject them.
	email := fmt.Sprintf("both_%d@nyu.edu", time.Now().UnixNano())
	session, user := helpers.RegisterAndLogin(t, ts, email, "password123", []string{"owner", "sitter"})

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, user.ID, suffix)

	res, body := applyToJob(t, ts, session, job.ID)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "You cannot apply to your own job")
}

func TestApplication_DecisionFlow(t *testing.T) {
	ts := GetTestServer(t)
	ownerSession, owner := helpers.CreateAndLoginOwner(t, ts)
	sitterSession, sitter := helpers.CreateAndLoginSitter(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, _ := applyToJob(t, ts, sitterSession, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "job_id = ? AND user_id = ?", job.ID, sitter.ID).Error)

	// Only the poster decides.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/applications/"+application.ID, sitterSession,
		map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Only the user who posted the job can perform this action")

	// A missing status is its own error.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/applications/"+application.ID, ownerSession,
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "New status is required for the update")

	// Accepting completes the job's acceptance phase.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/applications/"+application.ID, ownerSession,
		map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var storedJob models.Job
	require.NoError(t, ts.DB.First(&storedJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusAcceptanceDone, storedJob.Status)

	// The job left the open state, so further decisions are refused.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/applications/"+application.ID, ownerSession,
		map[string]interface{}{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "The job status must be 'open' to update the application.")
}

func TestApplication_VolumeMovesJobStatus(t *testing.T) {
	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	// The first nine applications leave the job open.
	for i := 0; i < 9; i++ {
		session, _ := helpers.CreateAndLoginSitter(t, ts)
		res, body := applyToJob(t, ts, session, job.ID)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	var storedJob models.Job
	require.NoError(t, ts.DB.First(&storedJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusOpen, storedJob.Status)

	// The tenth closes the acceptance phase.
	session, _ := helpers.CreateAndLoginSitter(t, ts)
	res, body := applyToJob(t, ts, session, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	require.NoError(t, ts.DB.First(&storedJob, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusAcceptanceDone, storedJob.Status)

	// And the job no longer takes applications.
	session, _ = helpers.CreateAndLoginSitter(t, ts)
	res, body = applyToJob(t, ts, session, job.ID)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "This job is no longer available")
}

func TestApplication_PosterListsJobApplications(t *testing.T) {
	ts := GetTestServer(t)
	ownerSession, owner := helpers.CreateAndLoginOwner(t, ts)
	sitterSession, sitter := helpers.CreateAndLoginSitter(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, _ := applyToJob(t, ts, sitterSession, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/jobs/"+job.ID+"/applications", ownerSession, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, sitter.ID)

	var listResp struct {
		Data []models.Application `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.Len(t, listResp.Data, 1)

	// Applicants cannot read the poster's list.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/jobs/"+job.ID+"/applications", sitterSession, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
