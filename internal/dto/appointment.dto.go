package dto

import "time"

// AppointmentDTO is the read shape served to the calendar front-end.
// PatientName and DentistName are denormalized display fields, not
// authoritative data.
type AppointmentDTO struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	PatientName     string    `json:"patientName,omitempty"`
	DentistID       string    `json:"dentistId"`
	DentistName     string    `json:"dentistName,omitempty"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
