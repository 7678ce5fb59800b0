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

func TestJob_CreateAndList(t *testing.T) {
	ts := GetTestServer(t)
	session, owner := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	pet := helpers.CreateTestPet(t, ts.DB, owner.ID, "Biscuit "+suffix)
	location := helpers.CreateTestLocation(t, ts.DB, owner.ID, "12 W 4th St "+suffix)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/jobs", session, map[string]interface{}{
		"pet_id":      pet.ID,
		"location_id": location.ID,
		"pay":         60.0,
		"start":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"end":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"status":"open"`)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/jobs", session, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, pet.ID)

	var listResp struct {
		Data struct {
			OwnerJobs      []models.Job `json:"owner_jobs"`
			SitterOpenJobs []models.Job `json:"sitter_open_jobs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.Len(t, listResp.Data.OwnerJobs, 1)
	assert.Empty(t, listResp.Data.SitterOpenJobs, "owner-only accounts see no sitter feed")
}

func TestJob_CreateRejectsForeignPet(t *testing.T) {
	ts := GetTestServer(t)
	session, owner := helpers.CreateAndLoginOwner(t, ts)
	_, otherOwner := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	foreignPet := helpers.CreateTestPet(t, ts.DB, otherOwner.ID, "Foreign "+suffix)
	location := helpers.CreateTestLocation(t, ts.DB, owner.ID, "88 Mercer St "+suffix)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs", session, map[string]interface{}{
		"pet_id":      foreignPet.ID,
		"location_id": location.ID,
		"pay":         50.0,
		"start":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"end":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJob_SitterSeesOpenJobsFromOthers(t *testing.T) {
	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginOwner(t, ts)
	sitterSession, _ := helpers.CreateAndLoginSitter(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/jobs", sitterSession, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, job.ID)
}

func TestJob_StatusUpdateIsPosterOnly(t *testing.T) {
	ts := GetTestServer(t)
	ownerSession, owner := helpers.CreateAndLoginOwner(t, ts)
	strangerSession, _ := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/jobs/"+job.ID, strangerSession, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/jobs/"+job.ID, ownerSession, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"cancelled"`)
}

func TestJob_StatusUpdateValidation(t *testing.T) {
	ts := GetTestServer(t)
	session, owner := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/jobs/"+job.ID, session, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "New status is required for the update")

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/jobs/"+job.ID, session, map[string]interface{}{
		"status": "levitating",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJob_UnknownJobIs404(t *testing.T) {
	ts := GetTestServer(t)
	session, _ := helpers.CreateAndLoginOwner(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/jobs/00000000-0000-0000-0000-000000000000", session, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Job not found")
}

func TestJob_DeleteMarksRemoved(t *testing.T) {
	ts := GetTestServer(t)
	session, owner := helpers.CreateAndLoginOwner(t, ts)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	job := helpers.CreateJobForOwner(t, ts.DB, owner.ID, suffix)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/jobs/"+job.ID, session, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var stored models.Job
	require.NoError(t, ts.DB.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusRemoved, stored.Status)
}
