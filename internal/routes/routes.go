package routes

import (
	"net/http"

	"petwork_backend/internal/config"
	"petwork_backend/internal/handlers"
	"petwork_backend/internal/middleware"
	"petwork_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup builds the router: public auth endpoints plus the
// session-protected API.
func Setup(db *gorm.DB, cfg *config.Config, registry *services.Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.WithDB(db))

	authHandler := handlers.NewAuthHandler(registry.Auth, cfg)
	userHandler := handlers.NewUserHandler(registry.Users, cfg)
	locationHandler := handlers.NewLocationHandler(registry.Locations)
	petHandler := handlers.NewPetHandler(registry.Pets, registry.Uploads)
	jobHandler := handlers.NewJobHandler(registry.Jobs, registry.Applications)
	applicationHandler := handlers.NewApplicationHandler(registry.Applications)
	uploadHandler := handlers.NewUploadHandler(registry.Uploads)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/session", authHandler.Session)
		auth.POST("/password_reset", authHandler.RequestPasswordReset)
		auth.POST("/password_reset/confirm", authHandler.ConfirmPasswordReset)
	}

	protected := api.Group("")
	protected.Use(middleware.SessionAuth(cfg.Session.CookieName, registry.Auth))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/whoami", authHandler.Whoami)

		protected.GET("/user", userHandler.Get)
		protected.PATCH("/user", userHandler.Update)
		protected.PUT("/user", userHandler.Update)
		protected.DELETE("/user", userHandler.Delete)

		protected.GET("/user/profile-picture", uploadHandler.GetProfilePicture)
		protected.PUT("/user/profile-picture", uploadHandler.UploadProfilePicture)
		protected.DELETE("/user/profile-picture", uploadHandler.DeleteProfilePicture)

		protected.GET("/user/locations", locationHandler.List)
		protected.POST("/user/locations", locationHandler.Create)
		protected.PATCH("/user/locations/:id", locationHandler.Update)
		protected.PUT("/user/locations/:id", locationHandler.Update)
		protected.DELETE("/user/locations/:id", locationHandler.Delete)

		protected.GET("/pets", petHandler.List)
		protected.POST("/pets", petHandler.Create)
		protected.GET("/pets/:id", petHandler.Get)
		protected.PATCH("/pets/:id", petHandler.Update)
		protected.PUT("/pets/:id", petHandler.Update)
		protected.DELETE("/pets/:id", petHandler.Delete)
		protected.POST("/pets/:id/pictures", petHandler.UploadPicture)

		protected.GET("/jobs", jobHandler.List)
		protected.POST("/jobs", jobHandler.Create)
		protected.GET("/jobs/:id", jobHandler.Get)
		protected.PUT("/jobs/:id", jobHandler.UpdateStatus)
		protected.DELETE("/jobs/:id", jobHandler.Delete)
		protected.GET("/jobs/:id/applications", jobHandler.ListApplications)

		protected.GET("/applications", applicationHandler.List)
		protected.POST("/applications", applicationHandler.Create)
		protected.PUT("/applications/:id", applicationHandler.UpdateStatus)

		protected.GET("/files/*key", uploadHandler.GetFile)
	}

	return router
}
