package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalcare/clinic-scheduler/internal/calendar"
)

func TestFetchAppointmentsByRangeSendsDateBoundsAndToken(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"data":  []calendar.Appointment{{ID: "a1"}},
			"total": 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC)

	got, err := c.FetchAppointmentsByRange(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "/api/appointments", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, []string{"2024-03-11"}, gotQuery["startDate"])
	assert.Equal(t, []string{"2024-03-17"}, gotQuery["endDate"])
}

func TestCreateAppointmentPostsDraft(t *testing.T) {
	var gotMethod string
	var gotDraft calendar.Draft

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDraft))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(calendar.Appointment{ID: "new", PatientID: gotDraft.PatientID})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	draft := calendar.Draft{
		PatientID:       "p1",
		DentistID:       "d1",
		StartTime:       time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          "SCHEDULED",
	}

	ap, err := c.CreateAppointment(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "new", ap.ID)
	assert.Equal(t, "p1", gotDraft.PatientID)
	assert.Equal(t, 30, gotDraft.DurationMinutes)
}

func TestDeleteAppointmentAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/appointments/a1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, "tok").DeleteAppointment(context.Background(), "a1"))
}

func TestErrorBodyMessageIsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error_code": "invalid_duration",
			"message":    "La duración debe ser al menos 15 minutos.",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").CreateAppointment(context.Background(), calendar.Draft{})

	require.Error(t, err)
	assert.Equal(t, "La duración debe ser al menos 15 minutos.", err.Error())
}

func TestUnexpectedStatusWithoutBodyIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "tok").ListPatients(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestListDentistsMapsStaffFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dentists", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"id": "d1", "fullName": "Luis Vega", "specialty": "Ortodoncia", "licenseNumber": "X-1"},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	got, err := New(srv.URL, "tok").ListDentists(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, calendar.Dentist{ID: "d1", FullName: "Luis Vega", Specialty: "Ortodoncia"}, got[0])
}
