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

type PetService struct {
	petRepo  repositories.PetRepository
	userRepo repositories.UserRepository
}

func NewPetService(petRepo repositories.PetRepository, userRepo repositories.UserRepository) *PetService {
	return &PetService{petRepo: petRepo, userRepo: userRepo}
}

func (s *PetService) List(db *gorm.DB, requesterID string) ([]models.Pet, error) {
	pets, err := s.petRepo.FindByOwner(db, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pets, nil
}

// Create adds a pet for the requester. Only users with the owner role
// keep pet profiles.
func (s *PetService) Create(db *gorm.DB, requesterID string, req *dto.CreatePetRequest) (*models.Pet, error) {
	user, err := s.userRepo.FindByID(db, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.HasRole(models.UserRoleOwner) {
		return nil, apperrors.NewForbiddenError("Only pet owners can add pets")
	}

	pet := &models.Pet{
		OwnerID:            requesterID,
		Name:               req.Name,
		Species:            req.Species,
		Color:              req.Color,
		Height:             req.Height,
		Breed:              req.Breed,
		Weight:             req.Weight,
		Pictures:           req.Pictures,
		ChipNumber:         req.ChipNumber,
		HealthRequirements: req.HealthRequirements,
	}

	if err := s.petRepo.Create(db, pet); err != nil {
		if errors.Is(err, repositories.ErrPetAlreadyExists) {
			return nil, apperrors.ErrDuplicatePetName
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("pet added", "pet_id", pet.ID, "owner_id", requesterID)
	return pet, nil
}

func (s *PetService) Get(db *gorm.DB, requesterID, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(db, petID)
	if err != nil {
		if errors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrPetNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if pet.OwnerID != requesterID {
		return nil, apperrors.ErrNotPetOwner
	}
	return pet, nil
}

func (s *PetService) Update(db *gorm.DB, requesterID, petID string, req *dto.UpdatePetRequest) (*models.Pet, error) {
	pet, err := s.Get(db, requesterID, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Color != nil {
		pet.Color = *req.Color
	}
	if req.Height != nil {
		pet.Height = *req.Height
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Weight != nil {
		pet.Weight = *req.Weight
	}
	if req.Pictures != nil {
		pet.Pictures = req.Pictures
	}
	if req.ChipNumber != nil {
		pet.ChipNumber = *req.ChipNumber
	}
	if req.HealthRequirements != nil {
		pet.HealthRequirements = *req.HealthRequirements
	}

	if err := s.petRepo.Update(db, pet); err != nil {
		if errors.Is(err, repositories.ErrPetAlreadyExists) {
			return nil, apperrors.ErrDuplicatePetName
		}
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetService) Delete(db *gorm.DB, requesterID, petID string) error {
	if _, err := s.Get(db, requesterID, petID); err != nil {
		return err
	}
	if err := s.petRepo.Delete(db, petID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("pet removed", "pet_id", petID, "owner_id", requesterID)
	return nil
}
