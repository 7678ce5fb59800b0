package repositories

import (
	"errors"
	"time"

	"petwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrPetAlreadyExists = errors.New("pet already exists")
)

type PetRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Pet, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Pet, error)
	Create(db *gorm.DB, pet *models.Pet) error
	Update(db *gorm.DB, pet *models.Pet) error
	AppendPicture(db *gorm.DB, petID, key string) error
	Delete(db *gorm.DB, id string) error
}

type PetRepositoryImpl struct{}

func NewPetRepository() PetRepository {
	return &PetRepositoryImpl{}
}

func (r *PetRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Pet, error) {
	var pet models.Pet
	err := db.First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	err := db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) Create(db *gorm.DB, pet *models.Pet) error {
	err := db.Create(pet).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPetAlreadyExists
	}
	return err
}

func (r *PetRepositoryImpl) Update(db *gorm.DB, pet *models.Pet) error {
	result := db.Model(pet).Updates(map[string]interface{}{
		"name":                pet.Name,
		"species":             pet.Species,
		"color":               pet.Color,
		"height":              pet.Height,
		"breed":               pet.Breed,
		"weight":              pet.Weight,
		"pictures":            pet.Pictures,
		"chip_number":         pet.ChipNumber,
		"health_requirements": pet.HealthRequirements,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrPetAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) AppendPicture(db *gorm.DB, petID, key string) error {
	result := db.Model(&models.Pet{}).Where("id = ?", petID).Updates(map[string]interface{}{
		"pictures":   gorm.Expr("array_append(pictures, ?)", key),
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Pet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}
