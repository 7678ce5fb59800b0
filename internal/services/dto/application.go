package dto

import (
	"petwork_backend/internal/models"
)

type CreateApplicationRequest struct {
	JobID   string                 `json:"job_id" validate:"required,uuid"`
	Details map[string]interface{} `json:"details"`
}

// UpdateApplicationStatusRequest carries the owner's decision. Status
// presence is checked in the service so a missing value produces the
// API's specific validation message.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}
