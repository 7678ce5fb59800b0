package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"petwork_backend/internal/config"
	"petwork_backend/internal/database"
	"petwork_backend/internal/email"
	"petwork_backend/internal/logger"
	"petwork_backend/internal/routes"
	"petwork_backend/internal/services"
	"petwork_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App bundles the wired application: config, db, router.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine

	server *http.Server
	emails email.Provider
}

// New loads configuration and wires every layer together.
func New() (*App, error) {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	emails := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
		Timeout:   30 * time.Second,
	})

	registry := services.NewRegistry(cfg, store, emails)
	router := routes.Setup(db, cfg, registry)

	return &App{
		Config: cfg,
		DB:     db,
		Router: router,
		emails: emails,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "addr", addr, "env", a.Config.Server.Env)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes resources.
func (a *App) Shutdown(ctx context.Context) error {
	if a.emails != nil {
		_ = a.emails.Close()
	}
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}
