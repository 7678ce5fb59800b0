package repositories

import (
	"errors"
	"time"

	"petwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLocationNotFound      = errors.New("location not found")
	ErrLocationAlreadyExists = errors.New("location already exists")
)

type LocationRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Location, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Location, error)
	Create(db *gorm.DB, location *models.Location) error
	Update(db *gorm.DB, location *models.Location) error
	Delete(db *gorm.DB, id string) error
	// ClearDefaults unsets default_location on every location of the
	// user except the given one. Callers run it in the same
	// transaction as the write that sets the new default.
	ClearDefaults(db *gorm.DB, userID, exceptID string) error
}

type LocationRepositoryImpl struct{}

func NewLocationRepository() LocationRepository {
	return &LocationRepositoryImpl{}
}

func (r *LocationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Location, error) {
	var location models.Location
	err := db.First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Location, error) {
	var locations []models.Location
	err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) Create(db *gorm.DB, location *models.Location) error {
	err := db.Create(location).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrLocationAlreadyExists
	}
	return err
}

func (r *LocationRepositoryImpl) Update(db *gorm.DB, location *models.Location) error {
	result := db.Model(location).Updates(map[string]interface{}{
		"address":          location.Address,
		"city":             location.City,
		"country":          location.Country,
		"default_location": location.DefaultLocation,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrLocationAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Location{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepositoryImpl) ClearDefaults(db *gorm.DB, userID, exceptID string) error {
	return db.Model(&models.Location{}).
		Where("user_id = ? AND id != ?", userID, exceptID).
		Update("default_location", false).Error
}
