package handlers

import (
	"net/http"

	"petwork_backend/internal/config"
	"petwork_backend/internal/services"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	auth *services.AuthService
	cfg  *config.Config
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(),
		auth:        auth,
		cfg:         cfg,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, token, maxAge, "/", "", h.cfg.Session.Secure, true)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.auth.Register(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewUserResponse(user))
}

// Login handles POST /api/auth/login and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Login(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cfg.Session.TTLHours*3600)
	h.OK(c, dto.NewUserResponse(user))
}

// Logout handles POST /api/auth/logout. It drops the session and
// clears the cookie; calling it while logged out still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.Session.CookieName); err == nil && token != "" {
		if err := h.auth.Logout(h.GetDB(c), token); err != nil {
			apperrors.HandleError(c, err)
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	h.OK(c, gin.H{"message": "Logged out"})
}

// Session handles GET /api/auth/session: a cheap authenticated-or-not
// probe for the frontend. It never returns an error status.
func (h *AuthHandler) Session(c *gin.Context) {
	resp := dto.SessionResponse{IsAuthenticated: false}

	if token, err := c.Cookie(h.cfg.Session.CookieName); err == nil && token != "" {
		if _, err := h.auth.Authenticate(h.GetDB(c), token); err == nil {
			resp.IsAuthenticated = true
		}
	}
	h.OK(c, resp)
}

// Whoami handles GET /api/auth/whoami on the authenticated group.
func (h *AuthHandler) Whoami(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
		return
	}
	h.OK(c, dto.WhoamiResponse{Email: user.Email})
}

// RequestPasswordReset handles POST /api/auth/password_reset.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.auth.RequestPasswordReset(h.GetDB(c), req.Email); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

// ConfirmPasswordReset handles POST /api/auth/password_reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.auth.ResetPassword(h.GetDB(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Password has been reset"})
}
