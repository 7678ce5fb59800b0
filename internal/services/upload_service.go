package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"petwork_backend/internal/imageprocessor"
	"petwork_backend/internal/logger"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/storage"
	"petwork_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// UploadService handles profile and pet pictures: it validates the
// upload, normalizes the image and hands the result to blob storage.
type UploadService struct {
	store     storage.Storage
	processor *imageprocessor.Processor
	userRepo  repositories.UserRepository
	petRepo   repositories.PetRepository
	cfg       UploadConfig
}

func NewUploadService(
	store storage.Storage,
	processor *imageprocessor.Processor,
	userRepo repositories.UserRepository,
	petRepo repositories.PetRepository,
	cfg UploadConfig,
) *UploadService {
	return &UploadService{
		store:     store,
		processor: processor,
		userRepo:  userRepo,
		petRepo:   petRepo,
		cfg:       cfg,
	}
}

func (s *UploadService) validate(header *multipart.FileHeader) error {
	if header.Size > s.cfg.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	contentType := header.Header.Get("Content-Type")
	for _, allowed := range s.cfg.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

func extensionFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

// UploadProfilePicture replaces the user's avatar. The previous blob is
// removed best-effort after the new one is in place.
func (s *UploadService) UploadProfilePicture(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader) (string, error) {
	if err := s.validate(header); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}

	file, err := header.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	processed, contentType, err := s.processor.ProcessImage(file, imageprocessor.SizeAvatar)
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	key := fmt.Sprintf("profile_pictures/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType))
	if err := s.store.Save(ctx, key, processed, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateProfilePicture(db, userID, key); err != nil {
		_ = s.store.Delete(ctx, key)
		return "", apperrors.InternalError(err)
	}

	if old := user.ProfilePicture; old != "" && old != key {
		if err := s.store.Delete(ctx, old); err != nil {
			logger.Warn("stale profile picture not removed", "key", old, "error", err)
		}
	}

	logger.Info("profile picture updated", "user_id", userID, "key", key)
	return key, nil
}

// GetProfilePicture streams the user's avatar.
func (s *UploadService) GetProfilePicture(ctx context.Context, db *gorm.DB, userID string) (io.ReadCloser, string, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", apperrors.InternalError(err)
	}
	if user.ProfilePicture == "" {
		return nil, "", apperrors.ErrNotFound(nil, "upload", "Profile picture not found")
	}

	reader, err := s.store.Get(ctx, user.ProfilePicture)
	if err != nil {
		return nil, "", apperrors.ErrNotFound(err, "upload", "Profile picture not found")
	}

	contentType := "image/jpeg"
	if strings.EqualFold(path.Ext(user.ProfilePicture), ".png") {
		contentType = "image/png"
	}
	return reader, contentType, nil
}

// DeleteProfilePicture removes the avatar record and its blob.
func (s *UploadService) DeleteProfilePicture(ctx context.Context, db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	if user.ProfilePicture == "" {
		return apperrors.ErrNotFound(nil, "upload", "Profile picture not found")
	}

	if err := s.userRepo.UpdateProfilePicture(db, userID, ""); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.store.Delete(ctx, user.ProfilePicture); err != nil {
		logger.Warn("profile picture blob not removed", "key", user.ProfilePicture, "error", err)
	}
	return nil
}

// UploadPetPicture appends a photo to the pet's gallery. Only the
// pet's owner may add photos.
func (s *UploadService) UploadPetPicture(ctx context.Context, db *gorm.DB, requesterID, petID string, header *multipart.FileHeader) (string, error) {
	if err := s.validate(header); err != nil {
		return "", err
	}

	pet, err := s.petRepo.FindByID(db, petID)
	if err != nil {
		if errors.Is(err, repositories.ErrPetNotFound) {
			return "", apperrors.ErrPetNotFound
		}
		return "", apperrors.InternalError(err)
	}
	if pet.OwnerID != requesterID {
		return "", apperrors.ErrNotPetOwner
	}

	file, err := header.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	processed, contentType, err := s.processor.ProcessImage(file, imageprocessor.SizePetPhoto)
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	key := fmt.Sprintf("pet_pictures/%s/%s%s", petID, uuid.NewString(), extensionFor(contentType))
	if err := s.store.Save(ctx, key, processed, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.petRepo.AppendPicture(db, petID, key); err != nil {
		_ = s.store.Delete(ctx, key)
		return "", apperrors.InternalError(err)
	}

	logger.Info("pet picture added", "pet_id", petID, "key", key)
	return key, nil
}

// GetFile streams an arbitrary stored blob by key. Used by the media
// download endpoint for pet pictures.
func (s *UploadService) GetFile(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, "", apperrors.ErrNotFound(err, "upload", "File not found")
	}
	contentType := "image/jpeg"
	if strings.EqualFold(path.Ext(key), ".png") {
		contentType = "image/png"
	}
	return reader, contentType, nil
}
