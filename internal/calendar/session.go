package calendar

import (
	"context"
	"time"

	domain "github.com/dentalcare/clinic-scheduler/internal/domain/appointment"
)

// DefaultDurationMinutes seeds the duration field when a new appointment
// is drafted from an empty slot.
const DefaultDurationMinutes = 30

// ModalPhase is the lifecycle of the appointment form modal.
type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalOpen
	ModalSubmitting
)

// IntentKind says whether the open modal creates a new appointment or
// edits an existing one.
type IntentKind int

const (
	IntentCreate IntentKind = iota
	IntentEdit
)

// Modal is the state of the appointment form. Zero value is the closed
// modal.
type Modal struct {
	Phase         ModalPhase
	Kind          IntentKind
	AppointmentID string
	Form          Draft
	FieldErrors   map[string]string
	SubmitError   string
	Patients      []Patient
	Dentists      []Dentist
}

// Session drives the weekly agenda: which week is visible, the cached
// appointment collection for it, and the modal interaction state. It is
// not safe for concurrent use; callers serialize access the way a UI
// event loop does.
type Session struct {
	collab Collaborator
	now    func() time.Time
	anchor time.Time
	cache  *Cache
	modal  Modal
}

// SessionOption tweaks a Session at construction.
type SessionOption func(*Session)

// WithClock replaces the wall clock, for tests and replays.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession opens a session anchored on the current week. The initial
// collection is empty until the first Refresh.
func NewSession(collab Collaborator, opts ...SessionOption) *Session {
	s := &Session{
		collab: collab,
		now:    time.Now,
		cache:  NewCache(collab),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.anchor = MondayOf(s.now())
	return s
}

// WeekAnchor is the Monday of the visible week.
func (s *Session) WeekAnchor() time.Time { return s.anchor }

// Days returns the seven visible dates.
func (s *Session) Days() []time.Time { return DaysOf(s.anchor) }

// Hours returns the visible hour rows.
func (s *Session) Hours() []int { return HoursOf() }

// Appointments returns the cached collection in server order.
func (s *Session) Appointments() []Appointment { return s.cache.Appointments() }

// Slot returns the appointments in the (day, hour) cell.
func (s *Session) Slot(day time.Time, hour int) []Appointment {
	return SlotAppointments(day, hour, s.cache.Appointments())
}

// Modal returns the current form state.
func (s *Session) Modal() Modal { return s.modal }

// Refresh reloads the visible week's appointments.
func (s *Session) Refresh(ctx context.Context) error {
	return s.cache.Load(ctx, s.anchor)
}

// Next advances one week and reloads.
func (s *Session) Next(ctx context.Context) error {
	s.anchor = s.anchor.AddDate(0, 0, DaysPerWeek)
	return s.cache.Load(ctx, s.anchor)
}

// Previous steps back one week and reloads.
func (s *Session) Previous(ctx context.Context) error {
	s.anchor = s.anchor.AddDate(0, 0, -DaysPerWeek)
	return s.cache.Load(ctx, s.anchor)
}

// Today jumps to the current week and reloads, even when it is already
// visible.
func (s *Session) Today(ctx context.Context) error {
	s.anchor = MondayOf(s.now())
	return s.cache.Load(ctx, s.anchor)
}

// ClickSlot opens the create modal seeded for the clicked cell. Clicking
// an occupied cell does nothing; the appointment chip itself is the edit
// affordance.
func (s *Session) ClickSlot(ctx context.Context, day time.Time, hour int) {
	if len(s.Slot(day, hour)) > 0 {
		return
	}
	y, m, d := day.Date()
	s.openModal(ctx, Modal{
		Phase: ModalOpen,
		Kind:  IntentCreate,
		Form: Draft{
			StartTime:       time.Date(y, m, d, hour, 0, 0, 0, day.Location()),
			DurationMinutes: DefaultDurationMinutes,
			Status:          string(domain.InitialStatus()),
		},
	})
}

// ClickAppointment opens the edit modal prefilled from the appointment.
func (s *Session) ClickAppointment(ctx context.Context, ap Appointment) {
	s.openModal(ctx, Modal{
		Phase:         ModalOpen,
		Kind:          IntentEdit,
		AppointmentID: ap.ID,
		Form: Draft{
			PatientID:       ap.PatientID,
			DentistID:       ap.DentistID,
			StartTime:       ap.StartTime.Truncate(time.Minute),
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
			Notes:           ap.Notes,
		},
	})
}

// openModal replaces whatever modal was showing and loads the selection
// lists. List failures leave the selects empty rather than blocking the
// form.
func (s *Session) openModal(ctx context.Context, m Modal) {
	if patients, err := s.collab.ListPatients(ctx); err == nil {
		m.Patients = patients
	}
	if dentists, err := s.collab.ListDentists(ctx); err == nil {
		m.Dentists = dentists
	}
	s.modal = m
}

// CloseModal dismisses the form and discards any draft.
func (s *Session) CloseModal() {
	s.modal = Modal{}
}

// SetForm replaces the draft and clears stale errors, as field edits do.
func (s *Session) SetForm(d Draft) {
	if s.modal.Phase != ModalOpen {
		return
	}
	s.modal.Form = d
	s.modal.FieldErrors = nil
	s.modal.SubmitError = ""
}

// Submit validates the draft and sends it. An invalid draft never reaches
// the collaborator. On success the modal closes and the week reloads; on
// rejection the modal reopens with the server message so the draft is not
// lost.
func (s *Session) Submit(ctx context.Context) error {
	if s.modal.Phase != ModalOpen {
		return nil
	}

	if errs := ValidateDraft(s.modal.Form); len(errs) > 0 {
		s.modal.FieldErrors = errs
		return &ValidationError{Fields: errs}
	}

	s.modal.FieldErrors = nil
	s.modal.SubmitError = ""
	s.modal.Phase = ModalSubmitting

	var err error
	if s.modal.Kind == IntentEdit {
		_, err = s.collab.UpdateAppointment(ctx, s.modal.AppointmentID, s.modal.Form)
	} else {
		_, err = s.collab.CreateAppointment(ctx, s.modal.Form)
	}
	if err != nil {
		s.modal.Phase = ModalOpen
		s.modal.SubmitError = err.Error()
		return err
	}

	s.modal = Modal{}
	return s.Refresh(ctx)
}

// Delete removes an appointment once the user has confirmed. Without
// confirmation nothing happens, the collaborator included.
func (s *Session) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if err := s.collab.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	s.modal = Modal{}
	return s.Refresh(ctx)
}
