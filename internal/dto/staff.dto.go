package dto

import "time"

type StaffDTO struct {
	ID            string     `json:"id"`
	UserID        *string    `json:"userId,omitempty"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Specialty     string     `json:"specialty"`
	LicenseNumber string     `json:"licenseNumber"`
	HireDate      *time.Time `json:"hireDate,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
