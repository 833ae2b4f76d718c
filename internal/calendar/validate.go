package calendar

import (
	"fmt"
	"sort"
	"strings"

	domain "github.com/dentalcare/clinic-scheduler/internal/domain/appointment"
)

// MinDurationMinutes is the smallest bookable appointment; the form steps
// in 15-minute increments.
const MinDurationMinutes = 15

// ValidationError reports the field-scoped messages of a rejected draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

// ValidateDraft applies the client-side submission rules. An empty map
// means the draft may be sent.
func ValidateDraft(d Draft) map[string]string {
	errs := make(map[string]string)

	if d.PatientID == "" {
		errs["patientId"] = "Debe seleccionar un paciente"
	}
	if d.DentistID == "" {
		errs["dentistId"] = "Debe seleccionar un dentista"
	}
	if d.StartTime.IsZero() {
		errs["startTime"] = "La fecha y hora son requeridas"
	}
	if d.DurationMinutes < MinDurationMinutes {
		errs["durationMinutes"] = "La duración debe ser al menos 15 minutos"
	}
	if d.Status == "" {
		errs["status"] = "El estado es requerido"
	} else if !domain.IsValidStatus(d.Status) {
		errs["status"] = "Estado inválido"
	}

	return errs
}
