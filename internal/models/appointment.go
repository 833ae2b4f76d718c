package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenantId"`

	PatientID string `gorm:"type:uuid;index;not null" json:"patientId"`
	DentistID string `gorm:"type:uuid;index;not null" json:"dentistId"`

	StartTime       time.Time `gorm:"index;not null" json:"startTime"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
