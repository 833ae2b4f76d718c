package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:150;not null" json:"name"`
	ContactEmail string `gorm:"size:100" json:"contactEmail"`
	Phone        string `gorm:"size:20" json:"phone"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
