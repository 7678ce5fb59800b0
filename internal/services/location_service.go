package services

import (
	"errors"

	"petwork_backend/internal/logger"
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// The service only operates in one metro area for now.
const (
	supportedCity    = "New York City"
	supportedCountry = "USA"
)

type LocationService struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

func (s *LocationService) List(db *gorm.DB, requesterID string) ([]models.Location, error) {
	locations, err := s.locationRepo.FindByUser(db, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

func (s *LocationService) Create(db *gorm.DB, requesterID string, req *dto.CreateLocationRequest) (*models.Location, error) {
	if req.City != supportedCity || req.Country != supportedCountry {
		return nil, apperrors.ErrUnsupportedArea
	}

	location := &models.Location{
		UserID:          requesterID,
		Address:         req.Address,
		City:            req.City,
		Country:         req.Country,
		DefaultLocation: req.DefaultLocation,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.locationRepo.Create(tx, location); err != nil {
			if errors.Is(err, repositories.ErrLocationAlreadyExists) {
				return apperrors.ErrDuplicateLocation
			}
			return apperrors.InternalError(err)
		}
		if location.DefaultLocation {
			if err := s.locationRepo.ClearDefaults(tx, requesterID, location.ID); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("location added", "location_id", location.ID, "user_id", requesterID)
	return location, nil
}

func (s *LocationService) Update(db *gorm.DB, requesterID, locationID string, req *dto.UpdateLocationRequest) (*models.Location, error) {
	location, err := s.locationRepo.FindByID(db, locationID)
	if err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if location.UserID != requesterID {
		return nil, apperrors.ErrNotLocationOwner
	}

	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Country != nil {
		location.Country = *req.Country
	}
	if location.City != supportedCity || location.Country != supportedCountry {
		return nil, apperrors.ErrUnsupportedArea
	}
	if req.DefaultLocation != nil {
		location.DefaultLocation = *req.DefaultLocation
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.locationRepo.Update(tx, location); err != nil {
			if errors.Is(err, repositories.ErrLocationAlreadyExists) {
				return apperrors.ErrDuplicateLocation
			}
			return apperrors.InternalError(err)
		}
		if location.DefaultLocation {
			if err := s.locationRepo.ClearDefaults(tx, requesterID, location.ID); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return location, nil
}

func (s *LocationService) Delete(db *gorm.DB, requesterID, locationID string) error {
	location, err := s.locationRepo.FindByID(db, locationID)
	if err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return apperrors.InternalError(err)
	}
	if location.UserID != requesterID {
		return apperrors.ErrNotLocationOwner
	}

	if err := s.locationRepo.Delete(db, locationID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("location removed", "location_id", locationID, "user_id", requesterID)
	return nil
}
