package hours

import (
	"testing"
	"time"

	"riko-storefront/storefront-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

// 2025-03-05 is a Wednesday.
func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 5, hour, minute, 0, 0, time.UTC)
}

var wednesday = []domain.WorkingHoursEntry{
	{Day: "lunes", Start: "08:00", End: "20:00"},
	{Day: "Miércoles", Start: "09:30", End: "18:15"},
}

func TestIsOpen_EmptySchedule(t *testing.T) {
	for h := 0; h < 24; h++ {
		assert.False(t, IsOpen(nil, at(h, 0)))
		assert.False(t, IsOpen([]domain.WorkingHoursEntry{}, at(h, 30)))
	}
}

func TestIsOpen_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "at start", now: at(9, 30), want: true},
		{name: "at end", now: at(18, 15), want: true},
		{name: "one minute before start", now: at(9, 29), want: false},
		{name: "one minute after end", now: at(18, 16), want: false},
		{name: "midday", now: at(12, 0), want: true},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, IsOpen(wednesday, testCase.now))
		})
	}
}

func TestIsOpen_NoEntryForToday(t *testing.T) {
	schedule := []domain.WorkingHoursEntry{{Day: "lunes", Start: "00:00", End: "23:59"}}
	assert.False(t, IsOpen(schedule, at(12, 0)))
}

func TestIsOpen_OvernightNeverOpen(t *testing.T) {
	schedule := []domain.WorkingHoursEntry{{Day: "miércoles", Start: "22:00", End: "02:00"}}
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30, 59} {
			assert.False(t, IsOpen(schedule, at(h, m)), "%02d:%02d", h, m)
		}
	}
}

func TestIsOpen_FirstMatchWins(t *testing.T) {
	schedule := []domain.WorkingHoursEntry{
		{Day: "miércoles", Start: "08:00", End: "09:00"},
		{Day: "miércoles", Start: "10:00", End: "22:00"},
	}
	assert.False(t, IsOpen(schedule, at(12, 0)))
	assert.True(t, IsOpen(schedule, at(8, 30)))
}

func TestIsOpen_UnparseableTimes(t *testing.T) {
	schedule := []domain.WorkingHoursEntry{{Day: "miércoles", Start: "nueve", End: "18:00"}}
	assert.False(t, IsOpen(schedule, at(12, 0)))
}

func TestEvaluator_LocationAndLocale(t *testing.T) {
	caracas := time.FixedZone("VET", -4*3600)
	e := Evaluator{Location: caracas, Names: EnglishWeekdays}
	schedule := []domain.WorkingHoursEntry{{Day: "Wednesday", Start: "07:00", End: "09:00"}}

	// 12:00 UTC is 08:00 in UTC-4.
	assert.True(t, e.IsOpen(schedule, at(12, 0)))
	assert.False(t, e.IsOpen(schedule, at(14, 0)))

	entry, ok := e.Today(schedule, at(12, 0))
	assert.True(t, ok)
	assert.Equal(t, "07:00", entry.Start)
}
