// Package hours evaluates free-text weekly schedules against an instant.
//
// Schedules are per-weekday strings of comma-separated 12-hour ranges, e.g.
// "9:00 AM - 5:00 PM" or "11:30 AM - 3:00 PM, 6:00 PM - 10:00 PM". The
// literal "Closed" or an empty string means closed all day.
//
// Known limitation: ranges that cross midnight (end before start) never
// match after midnight. The published dataset does not use them, and
// changing this would alter open/closed results for existing listings.
package hours

import (
	"strings"
	"time"

	"github.com/communitydirectory/directory-server/internal/domain"
)

const closedLiteral = "Closed"

// IsOpenAt reports whether a business with the given weekly hours is open
// at the given instant. Pure function: the result depends only on the
// schedule and the instant. Malformed ranges are treated as non-matching,
// never as an error.
func IsOpenAt(h domain.WeekHours, at time.Time) bool {
	schedule := h.ForWeekday(at.Weekday())
	if schedule == "" || schedule == closedLiteral {
		return false
	}

	minuteOfDay := at.Hour()*60 + at.Minute()

	for _, r := range strings.Split(schedule, ",") {
		start, end, ok := parseRange(strings.TrimSpace(r))
		if !ok {
			continue
		}
		// Bounds are inclusive: a 5:00 PM close is still open at 5:00 PM.
		if minuteOfDay >= start && minuteOfDay <= end {
			return true
		}
	}
	return false
}

// IsOpenNow is IsOpenAt against the current local time.
func IsOpenNow(h domain.WeekHours) bool {
	return IsOpenAt(h, time.Now())
}

// TodayLabel renders a display string for the instant's weekday, either
// "Closed today" or "Open today: <schedule>".
func TodayLabel(h domain.WeekHours, at time.Time) string {
	schedule := h.ForWeekday(at.Weekday())
	if schedule == "" || schedule == closedLiteral {
		return "Closed today"
	}
	return "Open today: " + schedule
}

// parseRange parses "H:MM AM - H:MM PM" into inclusive minute-of-day bounds.
func parseRange(r string) (start, end int, ok bool) {
	parts := strings.Split(r, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, ok = parseClock(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(strings.TrimSpace(parts[1]))
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// parseClock converts a 12-hour token like "9:00 AM" to minutes since
// midnight. 12:00 AM is minute 0 and 12:00 PM is minute 720; no other hour
// is special-cased.
func parseClock(token string) (int, bool) {
	fields := strings.Fields(token)
	if len(fields) != 2 {
		return 0, false
	}

	hhmm, period := fields[0], strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return 0, false
	}

	hh, mm, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}

	hour, ok := atoi(hh)
	if !ok || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, ok := atoi(mm)
	if !ok || minute < 0 || minute > 59 {
		return 0, false
	}

	total := hour*60 + minute
	if period == "PM" && hour != 12 {
		total += 12 * 60
	}
	if period == "AM" && hour == 12 {
		total = minute
	}
	return total, true
}

// atoi is a strict non-negative integer parse; strconv.Atoi accepts signs
// and we want "9" but not "+9".
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
