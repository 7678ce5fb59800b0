package handlers

import (
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobs         *services.JobService
	applications *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, applications *services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:  NewBaseHandler(),
		jobs:         jobs,
		applications: applications,
	}
}

// List handles GET /api/jobs: the requester's posted jobs plus the
// open jobs they could apply to.
func (h *JobHandler) List(c *gin.Context) {
	resp, err := h.jobs.List(h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobs.Create(h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, job)
}

// Get handles GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobs.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, job)
}

// UpdateStatus handles PUT /api/jobs/:id.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	job, err := h.jobs.UpdateStatus(h.GetDB(c), h.CurrentUserID(c), c.Param("id"), req.Status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, job)
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobs.Delete(h.GetDB(c), h.CurrentUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job removed"})
}

// ListApplications handles GET /api/jobs/:id/applications, poster only.
func (h *JobHandler) ListApplications(c *gin.Context) {
	applications, err := h.applications.ListForJob(h.GetDB(c), h.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, applications)
}
