package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the ISO date layout used across stored records.
	LayoutISO = "2006-01-02"
	// LayoutUS is the long date form used in user-facing confirmations.
	LayoutUS = "Monday, January 2, 2006"
)

// Clock renders t to minute-granularity HH:MM, the comparison format every
// scheduled time is stored in.
func Clock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MakeClock builds an HH:MM string from an hour and minute pair.
func MakeClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseClock splits an HH:MM string. Malformed input reports an error.
func ParseClock(clock string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", clock); err != nil {
		return 0, 0, fmt.Errorf("invalid clock string %q", clock)
	}
	_, _ = fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// Hour returns the hour component of an HH:MM string, or 0 if malformed.
func Hour(clock string) int {
	h, _, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return h
}

// AddMinutes shifts an HH:MM string by n minutes, wrapping within the day.
func AddMinutes(clock string, n int) string {
	h, m, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	total := (h*60 + m + n) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return MakeClock(total/60, total%60)
}

// Format12 renders an HH:MM string in 12-hour form, e.g. "17:30" -> "5:30 PM".
func Format12(clock string) string {
	h, m, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	display := h
	switch {
	case h > 12:
		display = h - 12
	case h == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, meridiem)
}
