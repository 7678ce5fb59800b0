package dto

type CreatePetRequest struct {
	Name               string   `json:"name" validate:"required"`
	Species            string   `json:"species"`
	Color              string   `json:"color"`
	Height             string   `json:"height"`
	Breed              string   `json:"breed" validate:"required"`
	Weight             string   `json:"weight" validate:"required"`
	Pictures           []string `json:"pictures"`
	ChipNumber         string   `json:"chip_number"`
	HealthRequirements string   `json:"health_requirements"`
}

type UpdatePetRequest struct {
	Name               *string  `json:"name,omitempty"`
	Species            *string  `json:"species,omitempty"`
	Color              *string  `json:"color,omitempty"`
	Height             *string  `json:"height,omitempty"`
	Breed              *string  `json:"breed,omitempty"`
	Weight             *string  `json:"weight,omitempty"`
	Pictures           []string `json:"pictures,omitempty"`
	ChipNumber         *string  `json:"chip_number,omitempty"`
	HealthRequirements *string  `json:"health_requirements,omitempty"`
}
