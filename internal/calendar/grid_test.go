package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysOfReturnsSevenAscendingDates(t *testing.T) {
	anchor := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	days := DaysOf(anchor)

	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, anchor.AddDate(0, 0, i), d)
	}
	assert.Equal(t, time.Sunday, days[6].Weekday())
}

func TestHoursOfRunsEightThroughNineteen(t *testing.T) {
	hours := HoursOf()

	require.Len(t, hours, 12)
	assert.Equal(t, 8, hours[0])
	assert.Equal(t, 19, hours[len(hours)-1])
	for i := 1; i < len(hours); i++ {
		assert.Equal(t, hours[i-1]+1, hours[i])
	}
}

func TestSlotAppointmentsMatchesDateAndHour(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	a1 := Appointment{ID: "a1", StartTime: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)}

	appointments := []Appointment{a1}
	got := SlotAppointments(day, 9, appointments)

	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	// Every other cell of the week stays empty.
	empty := 0
	for _, d := range DaysOf(day) {
		for _, h := range HoursOf() {
			if sameDate(d, day) && h == 9 {
				continue
			}
			if len(SlotAppointments(d, h, appointments)) == 0 {
				empty++
			}
		}
	}
	assert.Equal(t, 7*12-1, empty)
}

func TestSlotAppointmentsIgnoresMinuteOffset(t *testing.T) {
	day := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	appointments := []Appointment{
		{ID: "early", StartTime: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)},
		{ID: "late", StartTime: time.Date(2024, 3, 12, 10, 45, 0, 0, time.UTC)},
	}

	got := SlotAppointments(day, 10, appointments)

	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestSlotAppointmentsPreservesSourceOrder(t *testing.T) {
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	appointments := []Appointment{
		{ID: "b", StartTime: time.Date(2024, 3, 13, 14, 30, 0, 0, time.UTC)},
		{ID: "a", StartTime: time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)},
		{ID: "c", StartTime: time.Date(2024, 3, 13, 14, 15, 0, 0, time.UTC)},
	}

	got := SlotAppointments(day, 14, appointments)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSlotAppointmentsDropsOutOfRangeHours(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	appointments := []Appointment{
		{ID: "dawn", StartTime: time.Date(2024, 3, 14, 6, 0, 0, 0, time.UTC)},
		{ID: "night", StartTime: time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC)},
	}

	for _, h := range HoursOf() {
		assert.Empty(t, SlotAppointments(day, h, appointments), "hour %d", h)
	}
}
