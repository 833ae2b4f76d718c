package calendar

import "time"

// MondayOf normalizes a date to the Monday of its week, at midnight in the
// date's own location. Sundays roll back six days (ISO weeks run
// Monday through Sunday). Idempotent.
func MondayOf(date time.Time) time.Time {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	wd := midnight.Weekday()
	if wd == time.Sunday {
		return midnight.AddDate(0, 0, -6)
	}
	return midnight.AddDate(0, 0, -int(wd-time.Monday))
}
