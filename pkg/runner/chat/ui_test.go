package chat

import (
	"strings"
	"testing"

	"tableflip.dev/studyhall/pkg/chat"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timetable"
)

func testScope(t *testing.T) *store.Scope {
	t.Helper()
	s, err := store.Open(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s.Scope("")
}

func TestTimetableListingRendersDurations(t *testing.T) {
	scope := testScope(t)
	svc := timetable.Service{Scope: scope}
	if err := svc.SetGoal("pass the midterm", "graduate"); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	u := newUI(&chat.Assistant{Scope: scope})
	got := u.listing("navigate_goaltimetable")

	if !strings.Contains(got, "07:00 AM  Morning Review Session (30 min)") {
		t.Fatalf("timetable row missing or malformed:\n%s", got)
	}
	if strings.Contains(got, "%!") {
		t.Fatalf("listing contains a formatting error:\n%s", got)
	}
}

func TestSchedulerListingMarksCompletion(t *testing.T) {
	scope := testScope(t)
	a := &chat.Assistant{Scope: scope}
	if _, err := a.Interpret("Add homework at 5 PM"); err != nil {
		t.Fatalf("interpret: %v", err)
	}

	u := newUI(a)
	got := u.listing("navigate_scheduler")

	if !strings.Contains(got, "[ ]") || !strings.Contains(got, "Homework") {
		t.Fatalf("scheduler listing missing the pending task:\n%s", got)
	}
}
