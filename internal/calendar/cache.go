package calendar

import (
	"context"
	"time"
)

// Cache holds the appointment collection for the visible week. A load
// replaces the whole collection; there is no incremental merge.
//
// Loads are not cancelled when the user navigates away mid-flight. Instead
// every load carries a generation number and only the latest issued
// generation may apply its response; superseded responses, successful or
// not, are discarded.
type Cache struct {
	collab       Collaborator
	generation   uint64
	appointments []Appointment
}

func NewCache(collab Collaborator) *Cache {
	return &Cache{collab: collab}
}

// Load fetches the inclusive range [weekAnchor, weekAnchor+6 end-of-day]
// and replaces the collection. On failure the previous collection stays in
// place so the grid keeps rendering stale-but-present data.
func (c *Cache) Load(ctx context.Context, weekAnchor time.Time) error {
	c.generation++
	gen := c.generation

	start := weekAnchor
	end := endOfDay(weekAnchor.AddDate(0, 0, DaysPerWeek-1))

	appointments, err := c.collab.FetchAppointmentsByRange(ctx, start, end)

	if gen != c.generation {
		// A newer load was issued while this one was in flight.
		return nil
	}
	if err != nil {
		return err
	}

	c.appointments = appointments
	return nil
}

// Appointments returns the collection in server order.
func (c *Cache) Appointments() []Appointment {
	return c.appointments
}

func endOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}
