package middleware

import (
	"context"

	"petwork_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WithDB stores the connection pool in the request context so handlers
// and services resolve it per request. Tests swap in a transaction.
func WithDB(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), contextkeys.DBContextKey, db)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
