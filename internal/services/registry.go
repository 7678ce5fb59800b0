package services

import (
	"time"

	"petwork_backend/internal/config"
	"petwork_backend/internal/email"
	"petwork_backend/internal/imageprocessor"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/storage"
)

// Registry wires every service with its repositories and shared
// infrastructure. Handlers pull services from here.
type Registry struct {
	Auth         *AuthService
	Users        *UserService
	Locations    *LocationService
	Pets         *PetService
	Jobs         *JobService
	Applications *ApplicationService
	Uploads      *UploadService
}

func NewRegistry(cfg *config.Config, store storage.Storage, emails email.Provider) *Registry {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	locationRepo := repositories.NewLocationRepository()
	petRepo := repositories.NewPetRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	return &Registry{
		Auth: NewAuthService(userRepo, sessionRepo, emails, AuthConfig{
			SessionTTL:    time.Duration(cfg.Session.TTLHours) * time.Hour,
			ResetSecret:   cfg.Auth.ResetTokenSecret,
			ResetTokenTTL: time.Duration(cfg.Auth.ResetTokenTTLHours) * time.Hour,
			ResetURLBase:  cfg.Auth.ResetURLBase,
		}),
		Users:        NewUserService(userRepo),
		Locations:    NewLocationService(locationRepo),
		Pets:         NewPetService(petRepo, userRepo),
		Jobs:         NewJobService(jobRepo, petRepo, locationRepo, userRepo),
		Applications: NewApplicationService(applicationRepo, jobRepo, userRepo),
		Uploads: NewUploadService(store, processor, userRepo, petRepo, UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		}),
	}
}
