package chat

import (
	"testing"
	"time"
)

var at = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC) // Saturday

func TestExtractTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"meet at 3:30 pm", "15:30"},
		{"meet at 3:30", "15:30"}, // bare hour below 8 is PM
		{"meet at 10:15", "10:15"},
		{"call at 5 pm", "17:00"},
		{"call at 12 am", "00:00"},
		{"see you at 4", "16:00"},
		{"see you at 9", "09:00"},
		{"review in the morning", "09:00"},
		{"review in the evening", "18:00"},
		{"no clock here", "13:00"}, // one hour after now
	}
	for _, c := range cases {
		if got := ExtractTime(c.in, at); got != c.want {
			t.Errorf("ExtractTime(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"due today", "2026-03-14"},
		{"due tomorrow", "2026-03-15"},
		{"due day after tomorrow", "2026-03-16"},
		{"due next week", "2026-03-21"},
		{"on monday", "2026-03-16"},   // next Monday after Saturday
		{"on saturday", "2026-03-21"}, // same weekday wraps a full week
		{"on 2026-04-01", "2026-04-01"},
		{"on 4/1/2026", "2026-04-01"},
		{"on 4/1", "2026-04-01"},
		{"on april 1", "2026-04-01"},
		{"sometime soon", ""},
	}
	for _, c := range cases {
		if got := ExtractDate(c.in, at); got != c.want {
			t.Errorf("ExtractDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		want string
	}{
		{"Add homework at 5 PM", KindTask, "Homework"},
		{"schedule physics revision tomorrow at 3:30 pm", KindTask, "Physics revision"},
		{"add", KindTask, "New Task"},
		{"add event", KindEvent, "New Event"},
		{"mark tomorrow as special day", KindDate, "Important Day"},
	}
	for _, c := range cases {
		if got := ExtractTitle(c.in, c.kind); got != c.want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-12-25"); got != "Friday, December 25, 2026" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("unparseable dates pass through, got %q", got)
	}
}
