package handlers

import (
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	BaseHandler
	pets    *services.PetService
	uploads *services.UploadService
}

func NewPetHandler(pets *services.PetService, uploads *services.UploadService) *PetHandler {
	return &PetHandler{
		BaseHandler: NewBaseHandler(),
		pets:        pets,
		uploads:     uploads,
	}
}

// List handles GET /api/pets.
func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.pets.List(h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, pets)
}

// Create handles POST /api/pets.
func (h *PetHandler) Create(c *gin.Context) {
	var req dto.CreatePetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pet, err := h.pets.Create(h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, pet)
}

// Get handles GET /api/pets/:id.
func (h *PetHandler) Get(c *gin.Context) {
	pet, err := h.pets.Get(h.GetDB(c), h.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, pet)
}

// Update handles PATCH /api/pets/:id.
func (h *PetHandler) Update(c *gin.Context) {
	var req dto.UpdatePetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pet, err := h.pets.Update(h.GetDB(c), h.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, pet)
}

// Delete handles DELETE /api/pets/:id.
func (h *PetHandler) Delete(c *gin.Context) {
	if err := h.pets.Delete(h.GetDB(c), h.CurrentUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Pet deleted"})
}

// UploadPicture handles POST /api/pets/:id/pictures (multipart field
// "file").
func (h *PetHandler) UploadPicture(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file is required"))
		return
	}

	key, err := h.uploads.UploadPetPicture(
		c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), c.Param("id"), header)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"key": key})
}
