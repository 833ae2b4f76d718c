package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenantId"`

	// Back-reference to the login account, set when an account is linked.
	UserID *string `gorm:"type:uuid" json:"userId"`

	FirstName     string     `gorm:"size:100;not null" json:"firstName"`
	LastName      string     `gorm:"size:100;not null" json:"lastName"`
	Phone         string     `gorm:"size:20" json:"phone"`
	Email         string     `gorm:"size:100" json:"email"`
	Specialty     string     `gorm:"size:100" json:"specialty"`
	LicenseNumber string     `gorm:"size:50" json:"licenseNumber"`
	HireDate      *time.Time `json:"hireDate"`
	Active        bool       `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
