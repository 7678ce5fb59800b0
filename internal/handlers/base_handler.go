package handlers

import (
	"net/http"

	"petwork_backend/internal/middleware"
	"petwork_backend/internal/models"
	"petwork_backend/internal/validator"
	"petwork_backend/pkg/apperrors"
	"petwork_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries shared helpers; every resource handler embeds it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() BaseHandler {
	return BaseHandler{validator: validator.New()}
}

// GetDB resolves the request-scoped *gorm.DB placed by middleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, _ := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	return db
}

// CurrentUser returns the authenticated user set by the session
// middleware.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's ID.
func (h *BaseHandler) CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.CurrentUserIDKey)
}

// BindAndValidateJSON decodes the body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data interface{} `json:"data"`
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}
