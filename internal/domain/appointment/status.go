package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// StatusInfo carries the display metadata shown next to a status value.
// The table is fixed; it is not user-extensible.
type StatusInfo struct {
	Value Status `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusTable = []StatusInfo{
	{StatusScheduled, "Programada", "blue"},
	{StatusConfirmed, "Confirmada", "green"},
	{StatusInProgress, "En Progreso", "yellow"},
	{StatusCompleted, "Completada", "gray"},
	{StatusCancelled, "Cancelada", "red"},
	{StatusNoShow, "No Asistió", "orange"},
}

// Statuses returns the full taxonomy in display order.
func Statuses() []StatusInfo {
	out := make([]StatusInfo, len(statusTable))
	copy(out, statusTable)
	return out
}

func IsValidStatus(s string) bool {
	for _, info := range statusTable {
		if string(info.Value) == s {
			return true
		}
	}
	return false
}

// InitialStatus is the status every new appointment starts with.
func InitialStatus() Status {
	return StatusScheduled
}

// Info returns the display metadata for a status value, falling back to the
// raw value with no color when the status is unknown.
func Info(s string) StatusInfo {
	for _, info := range statusTable {
		if string(info.Value) == s {
			return info
		}
	}
	return StatusInfo{Value: Status(s), Label: s}
}
