package handlers

import (
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:  NewBaseHandler(),
		applications: applications,
	}
}

// List handles GET /api/applications: the requester's own bids.
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applications.ListForUser(h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, applications)
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applications.Apply(h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, application)
}

// UpdateStatus handles PUT /api/applications/:id: the poster's accept
// or reject decision.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	application, err := h.applications.UpdateStatus(
		h.GetDB(c), h.CurrentUserID(c), c.Param("id"), req.Status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, application)
}
