package calendar

import "time"

// The visible grid runs 08:00 through 19:00 in one-hour rows, seven day
// columns. The hour range is clinic policy, not configuration.
const (
	GridStartHour = 8
	GridEndHour   = 19
	DaysPerWeek   = 7
)

// DaysOf returns the seven consecutive calendar dates starting at the week
// anchor, ascending.
func DaysOf(weekAnchor time.Time) []time.Time {
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = weekAnchor.AddDate(0, 0, i)
	}
	return days
}

// HoursOf returns the fixed hour rows, 8 through 19 inclusive.
func HoursOf() []int {
	hours := make([]int, 0, GridEndHour-GridStartHour+1)
	for h := GridStartHour; h <= GridEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SlotAppointments returns the appointments placed in the (day, hour) cell:
// those whose start time falls on the same calendar date with the same
// truncated hour. Matching is by local calendar fields, so two appointments
// in the same local hour collide into one cell regardless of minute offset.
// Source order is preserved. Appointments outside the visible hour range
// match no cell and simply never render.
func SlotAppointments(day time.Time, hour int, appointments []Appointment) []Appointment {
	var out []Appointment
	for _, ap := range appointments {
		if sameDate(ap.StartTime, day) && ap.StartTime.Hour() == hour {
			out = append(out, ap)
		}
	}
	return out
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
