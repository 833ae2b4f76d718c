// Package calendar implements the weekly appointment grid: a fixed 7-day ×
// 12-hour slot matrix, week navigation anchored on Mondays, the in-memory
// appointment collection for the visible week, and the create/edit/delete
// interactions against the persistence API.
//
// The package owns no transport or storage; everything remote goes through
// the Collaborator interface.
package calendar

import (
	"context"
	"time"
)

// Appointment is the read shape returned by the persistence API.
// PatientName and DentistName are denormalized display fields supplied by
// the server; they are not authoritative.
type Appointment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	PatientName     string    `json:"patientName,omitempty"`
	DentistID       string    `json:"dentistId"`
	DentistName     string    `json:"dentistName,omitempty"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}

// Draft is the write payload for both create and update; updates are full
// replaces, not patches.
type Draft struct {
	PatientID       string    `json:"patientId"`
	DentistID       string    `json:"dentistId"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}

// Patient and Dentist carry just enough to fill the selection fields of the
// appointment form.
type Patient struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type Dentist struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Specialty string `json:"specialty"`
}

// Collaborator is the external appointment API consumed by this package.
// Date ranges are inclusive on both ends. Tenant scoping is the
// collaborator's responsibility.
type Collaborator interface {
	FetchAppointmentsByRange(ctx context.Context, start, end time.Time) ([]Appointment, error)
	CreateAppointment(ctx context.Context, draft Draft) (*Appointment, error)
	UpdateAppointment(ctx context.Context, id string, draft Draft) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListPatients(ctx context.Context) ([]Patient, error)
	ListDentists(ctx context.Context) ([]Dentist, error)
}
