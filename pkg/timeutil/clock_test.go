package timeutil

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	got := Clock(time.Date(2026, 3, 14, 9, 5, 59, 0, time.Local))
	if got != "09:05" {
		t.Fatalf("expected 09:05, got %s", got)
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		clock string
		n     int
		want  string
	}{
		{"09:00", 60, "10:00"},
		{"09:30", 45, "10:15"},
		{"23:50", 20, "00:10"},
		{"00:05", -10, "23:55"},
	}
	for _, tc := range cases {
		if got := AddMinutes(tc.clock, tc.n); got != tc.want {
			t.Fatalf("AddMinutes(%s, %d): expected %s, got %s", tc.clock, tc.n, tc.want, got)
		}
	}
}

func TestFormat12(t *testing.T) {
	cases := map[string]string{
		"00:15": "12:15 AM",
		"09:30": "9:30 AM",
		"12:00": "12:00 PM",
		"17:05": "5:05 PM",
		"23:30": "11:30 PM",
	}
	for clock, want := range cases {
		if got := Format12(clock); got != want {
			t.Fatalf("Format12(%s): expected %s, got %s", clock, want, got)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	if _, _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
	if _, _, err := ParseClock("bogus"); err == nil {
		t.Fatalf("expected error for non-clock input")
	}
}
