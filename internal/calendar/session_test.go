package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestSession(fake *fakeCollaborator) *Session {
	// Wednesday 2024-03-13; the visible week anchors on Monday 03-11.
	return NewSession(fake, WithClock(fixedClock(time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC))))
}

func TestNewSessionAnchorsOnCurrentMonday(t *testing.T) {
	s := newTestSession(&fakeCollaborator{})
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), s.WeekAnchor())
	assert.Empty(t, s.Appointments())
	assert.Equal(t, ModalClosed, s.Modal().Phase)
}

func TestNextThenPreviousRestoresAnchor(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)
	anchor := s.WeekAnchor()

	require.NoError(t, s.Next(context.Background()))
	assert.Equal(t, anchor.AddDate(0, 0, 7), s.WeekAnchor())

	require.NoError(t, s.Previous(context.Background()))
	assert.Equal(t, anchor, s.WeekAnchor())
	assert.Equal(t, 2, fake.fetchCalls)
}

func TestTodayReloadsEvenWhenWeekAlreadyVisible(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)

	require.NoError(t, s.Today(context.Background()))
	require.NoError(t, s.Today(context.Background()))

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), s.WeekAnchor())
	assert.Equal(t, 2, fake.fetchCalls)
}

func TestClickEmptySlotSeedsCreateDraft(t *testing.T) {
	fake := &fakeCollaborator{
		patients: []Patient{{ID: "p1", FullName: "Ana Ruiz"}},
		dentists: []Dentist{{ID: "d1", FullName: "Luis Vega", Specialty: "Ortodoncia"}},
	}
	s := newTestSession(fake)

	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	s.ClickSlot(context.Background(), day, 14)

	m := s.Modal()
	require.Equal(t, ModalOpen, m.Phase)
	assert.Equal(t, IntentCreate, m.Kind)
	assert.Equal(t, time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC), m.Form.StartTime)
	assert.Equal(t, 30, m.Form.DurationMinutes)
	assert.Equal(t, "SCHEDULED", m.Form.Status)
	assert.Empty(t, m.Form.PatientID)
	assert.Empty(t, m.Form.DentistID)
	assert.Len(t, m.Patients, 1)
	assert.Len(t, m.Dentists, 1)
}

func TestClickOccupiedSlotDoesNothing(t *testing.T) {
	fake := &fakeCollaborator{
		fetchFn: func(ctx context.Context, start, end time.Time) ([]Appointment, error) {
			return []Appointment{{ID: "a1", StartTime: time.Date(2024, 3, 13, 14, 30, 0, 0, time.UTC)}}, nil
		},
	}
	s := newTestSession(fake)
	require.NoError(t, s.Refresh(context.Background()))

	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	assert.Equal(t, ModalClosed, s.Modal().Phase)
}

func TestClickAppointmentPrefillsEditDraft(t *testing.T) {
	s := newTestSession(&fakeCollaborator{})
	ap := Appointment{
		ID:              "a1",
		PatientID:       "p1",
		DentistID:       "d1",
		StartTime:       time.Date(2024, 3, 12, 9, 30, 12, 0, time.UTC),
		DurationMinutes: 45,
		Status:          "CONFIRMED",
		Notes:           "control",
	}

	s.ClickAppointment(context.Background(), ap)

	m := s.Modal()
	require.Equal(t, ModalOpen, m.Phase)
	assert.Equal(t, IntentEdit, m.Kind)
	assert.Equal(t, "a1", m.AppointmentID)
	assert.Equal(t, time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC), m.Form.StartTime)
	assert.Equal(t, 45, m.Form.DurationMinutes)
	assert.Equal(t, "CONFIRMED", m.Form.Status)
	assert.Equal(t, "control", m.Form.Notes)
}

func TestOpeningModalReplacesPreviousOne(t *testing.T) {
	s := newTestSession(&fakeCollaborator{})
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)

	s.ClickSlot(context.Background(), day, 9)
	s.ClickSlot(context.Background(), day, 11)

	m := s.Modal()
	require.Equal(t, ModalOpen, m.Phase)
	assert.Equal(t, 11, m.Form.StartTime.Hour())
}

func TestSubmitRejectsShortDurationWithoutCallingCollaborator(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)
	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	form := s.Modal().Form
	form.PatientID = "p1"
	form.DentistID = "d1"
	form.DurationMinutes = 10
	s.SetForm(form)

	err := s.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "durationMinutes")
	assert.NotContains(t, verr.Fields, "patientId")
	assert.Equal(t, 0, fake.createCalls)
	assert.Equal(t, ModalOpen, s.Modal().Phase)
	assert.Equal(t, verr.Fields, s.Modal().FieldErrors)
}

func TestSubmitRejectsMissingSelections(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)
	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	err := s.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "patientId")
	assert.Contains(t, verr.Fields, "dentistId")
	assert.Equal(t, 0, fake.createCalls)
}

func TestSubmitCreateClosesModalAndReloads(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)
	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	form := s.Modal().Form
	form.PatientID = "p1"
	form.DentistID = "d1"
	s.SetForm(form)

	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, 0, fake.updateCalls)
	assert.Equal(t, ModalClosed, s.Modal().Phase)
	assert.Equal(t, 1, fake.fetchCalls)
}

func TestSubmitEditUpdatesExistingAppointment(t *testing.T) {
	var gotID string
	fake := &fakeCollaborator{
		updateFn: func(ctx context.Context, id string, draft Draft) (*Appointment, error) {
			gotID = id
			ap := Appointment{ID: id}
			return &ap, nil
		},
	}
	s := newTestSession(fake)
	s.ClickAppointment(context.Background(), Appointment{
		ID: "a1", PatientID: "p1", DentistID: "d1",
		StartTime:       time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 30, Status: "CONFIRMED",
	})

	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, "a1", gotID)
	assert.Equal(t, 0, fake.createCalls)
	assert.Equal(t, ModalClosed, s.Modal().Phase)
}

func TestSubmitFailureReopensModalWithMessage(t *testing.T) {
	fake := &fakeCollaborator{
		createFn: func(ctx context.Context, draft Draft) (*Appointment, error) {
			return nil, errors.New("el dentista ya tiene una cita en ese horario")
		},
	}
	s := newTestSession(fake)
	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	form := s.Modal().Form
	form.PatientID = "p1"
	form.DentistID = "d1"
	s.SetForm(form)

	err := s.Submit(context.Background())

	require.Error(t, err)
	m := s.Modal()
	assert.Equal(t, ModalOpen, m.Phase)
	assert.Equal(t, "el dentista ya tiene una cita en ese horario", m.SubmitError)
	assert.Equal(t, "p1", m.Form.PatientID)
	assert.Equal(t, 0, fake.fetchCalls)
}

func TestDeleteWithoutConfirmationIsNoOp(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)

	require.NoError(t, s.Delete(context.Background(), "a1", false))

	assert.Equal(t, 0, fake.deleteCalls)
	assert.Equal(t, 0, fake.fetchCalls)
}

func TestDeleteConfirmedRemovesAndReloads(t *testing.T) {
	fake := &fakeCollaborator{}
	s := newTestSession(fake)

	require.NoError(t, s.Delete(context.Background(), "a1", true))

	assert.Equal(t, 1, fake.deleteCalls)
	assert.Equal(t, 1, fake.fetchCalls)
}

func TestDeleteFailureDoesNotReload(t *testing.T) {
	fake := &fakeCollaborator{
		deleteFn: func(ctx context.Context, id string) error { return errors.New("boom") },
	}
	s := newTestSession(fake)

	require.Error(t, s.Delete(context.Background(), "a1", true))
	assert.Equal(t, 0, fake.fetchCalls)
}

func TestCloseModalDiscardsDraft(t *testing.T) {
	s := newTestSession(&fakeCollaborator{})
	s.ClickSlot(context.Background(), time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), 14)

	s.CloseModal()

	m := s.Modal()
	assert.Equal(t, ModalClosed, m.Phase)
	assert.True(t, m.Form.StartTime.IsZero())
}
