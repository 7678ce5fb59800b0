package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is a sitting request posted by a pet's owner. The composite
// unique index backs the application-level duplicate check.
type Job struct {
	BaseModel
	PetID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_job_slot" json:"pet_id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	LocationID string    `gorm:"type:uuid;not null;uniqueIndex:idx_job_slot" json:"location_id"`
	Status     JobStatus `gorm:"type:varchar(30);not null;default:'open'" json:"status"`
	Pay        float64   `gorm:"type:numeric(8,2);not null" json:"pay"`
	Start      time.Time `gorm:"not null;uniqueIndex:idx_job_slot" json:"start"`
	End        time.Time `gorm:"not null;uniqueIndex:idx_job_slot" json:"end"`

	Pet      *Pet      `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// Application is a sitter's bid on a job. One application per
// (user, job) pair, enforced by a database constraint.
type Application struct {
	BaseModel
	JobID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_user_job" json:"job_id"`
	UserID  string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_user_job" json:"user_id"`
	Status  ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	Details datatypes.JSON    `gorm:"type:jsonb" json:"details,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
