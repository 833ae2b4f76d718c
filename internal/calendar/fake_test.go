package calendar

import (
	"context"
	"time"
)

// fakeCollaborator is a scripted in-memory stand-in for the persistence
// API. Each hook may be replaced per test; unset hooks answer empty.
type fakeCollaborator struct {
	fetchFn  func(ctx context.Context, start, end time.Time) ([]Appointment, error)
	createFn func(ctx context.Context, draft Draft) (*Appointment, error)
	updateFn func(ctx context.Context, id string, draft Draft) (*Appointment, error)
	deleteFn func(ctx context.Context, id string) error

	patients []Patient
	dentists []Dentist

	fetchCalls  int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeCollaborator) FetchAppointmentsByRange(ctx context.Context, start, end time.Time) ([]Appointment, error) {
	f.fetchCalls++
	if f.fetchFn != nil {
		return f.fetchFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeCollaborator) CreateAppointment(ctx context.Context, draft Draft) (*Appointment, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, draft)
	}
	ap := Appointment{ID: "created", PatientID: draft.PatientID, DentistID: draft.DentistID,
		StartTime: draft.StartTime, DurationMinutes: draft.DurationMinutes, Status: draft.Status}
	return &ap, nil
}

func (f *fakeCollaborator) UpdateAppointment(ctx context.Context, id string, draft Draft) (*Appointment, error) {
	f.updateCalls++
	if f.updateFn != nil {
		return f.updateFn(ctx, id, draft)
	}
	ap := Appointment{ID: id, PatientID: draft.PatientID, DentistID: draft.DentistID,
		StartTime: draft.StartTime, DurationMinutes: draft.DurationMinutes, Status: draft.Status}
	return &ap, nil
}

func (f *fakeCollaborator) DeleteAppointment(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCollaborator) ListPatients(ctx context.Context) ([]Patient, error) {
	return f.patients, nil
}

func (f *fakeCollaborator) ListDentists(ctx context.Context) ([]Dentist, error) {
	return f.dentists, nil
}
