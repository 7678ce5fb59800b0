package middleware

import (
	"petwork_backend/internal/logger"
	"petwork_backend/internal/services"
	"petwork_backend/pkg/apperrors"
	"petwork_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Gin context keys set by SessionAuth.
const (
	CurrentUserKey   = "currentUser"
	CurrentUserIDKey = "currentUserID"
	SessionTokenKey  = "sessionToken"
)

// SessionAuth resolves the session cookie to a user and aborts with
// 401 when there is no valid session.
func SessionAuth(cookieName string, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			c.Abort()
			return
		}

		db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(nil))
			c.Abort()
			return
		}

		user, err := auth.Authenticate(db, token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(CurrentUserIDKey, user.ID)
		c.Set(SessionTokenKey, token)
		c.Request = c.Request.WithContext(
			logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}
