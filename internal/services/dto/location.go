package dto

type CreateLocationRequest struct {
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	Country         string `json:"country" validate:"required"`
	DefaultLocation bool   `json:"default_location"`
}

type UpdateLocationRequest struct {
	Address         *string `json:"address,omitempty"`
	City            *string `json:"city,omitempty"`
	Country         *string `json:"country,omitempty"`
	DefaultLocation *bool   `json:"default_location,omitempty"`
}
