package handlers

import (
	"petwork_backend/internal/config"
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	users *services.UserService
	cfg   *config.Config
}

func NewUserHandler(users *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(),
		users:       users,
		cfg:         cfg,
	}
}

// Get handles GET /api/user.
func (h *UserHandler) Get(c *gin.Context) {
	profile, err := h.users.Get(h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, profile)
}

// Update handles PATCH /api/user.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.users.Update(h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, profile)
}

// Delete handles DELETE /api/user. The account goes away along with
// its session, so the cookie is cleared too.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(h.GetDB(c), h.CurrentUserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.Secure, true)
	h.OK(c, gin.H{"message": "Account deleted"})
}
