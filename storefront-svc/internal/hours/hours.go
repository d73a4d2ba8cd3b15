package hours

import (
	"strconv"
	"strings"
	"time"

	"riko-storefront/storefront-svc/internal/domain"
)

// SpanishWeekdays are indexed by time.Weekday, matching the names restaurants
// enter in their schedules.
var SpanishWeekdays = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var EnglishWeekdays = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Evaluator decides whether a weekly schedule is open at a given instant.
// A nil Location means the instant's own location is used.
type Evaluator struct {
	Location *time.Location
	Names    [7]string
}

var Default = Evaluator{Names: SpanishWeekdays}

func IsOpen(schedule []domain.WorkingHoursEntry, now time.Time) bool {
	return Default.IsOpen(schedule, now)
}

// IsOpen is inclusive on both ends. The first entry for today's weekday wins.
// Ranges that wrap past midnight (end < start) never match.
func (e Evaluator) IsOpen(schedule []domain.WorkingHoursEntry, now time.Time) bool {
	if len(schedule) == 0 {
		return false
	}
	if e.Location != nil {
		now = now.In(e.Location)
	}
	day := e.Names[now.Weekday()]
	current := now.Hour()*100 + now.Minute()

	for _, entry := range schedule {
		if !strings.EqualFold(strings.TrimSpace(entry.Day), day) {
			continue
		}
		start, ok := clock(entry.Start)
		if !ok {
			return false
		}
		end, ok := clock(entry.End)
		if !ok {
			return false
		}
		return start <= current && current <= end
	}
	return false
}

// Today returns today's schedule entry, if any.
func (e Evaluator) Today(schedule []domain.WorkingHoursEntry, now time.Time) (domain.WorkingHoursEntry, bool) {
	if e.Location != nil {
		now = now.In(e.Location)
	}
	day := e.Names[now.Weekday()]
	for _, entry := range schedule {
		if strings.EqualFold(strings.TrimSpace(entry.Day), day) {
			return entry, true
		}
	}
	return domain.WorkingHoursEntry{}, false
}

// clock turns "HH:MM" into HHMM.
func clock(s string) (int, bool) {
	v, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ":", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}
