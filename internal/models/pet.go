package models

import (
	"github.com/lib/pq"
)

type Pet struct {
	BaseModel
	OwnerID            string         `gorm:"type:uuid;not null;uniqueIndex:idx_pet_name_owner" json:"owner_id"`
	Name               string         `gorm:"not null;uniqueIndex:idx_pet_name_owner" json:"name"`
	Species            string         `json:"species,omitempty"`
	Color              string         `json:"color,omitempty"`
	Height             string         `json:"height,omitempty"`
	Breed              string         `gorm:"not null" json:"breed"`
	Weight             string         `gorm:"not null" json:"weight"`
	Pictures           pq.StringArray `gorm:"type:text[]" json:"pictures"`
	ChipNumber         string         `json:"chip_number,omitempty"`
	HealthRequirements string         `json:"health_requirements,omitempty"`
}
