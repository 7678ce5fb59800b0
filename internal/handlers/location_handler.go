package handlers

import (
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	BaseHandler
	locations *services.LocationService
}

func NewLocationHandler(locations *services.LocationService) *LocationHandler {
	return &LocationHandler{
		BaseHandler: NewBaseHandler(),
		locations:   locations,
	}
}

// List handles GET /api/user/locations.
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locations.List(h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, locations)
}

// Create handles POST /api/user/locations.
func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locations.Create(h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, location)
}

// Update handles PATCH /api/user/locations/:id.
func (h *LocationHandler) Update(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locations.Update(h.GetDB(c), h.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, location)
}

// Delete handles DELETE /api/user/locations/:id.
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locations.Delete(h.GetDB(c), h.CurrentUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Location deleted"})
}
