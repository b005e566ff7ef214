package chat

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/store"
)

func newAssistant(t *testing.T, at time.Time) *Assistant {
	t.Helper()
	s, err := store.Open(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	seq := 0
	return &Assistant{
		Scope: s.Scope("alice@example.com"),
		Now:   func() time.Time { return at },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}
}

var noon = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) // a Saturday

func TestAddTaskCommand(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Add homework at 5 PM")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "task_added" {
		t.Fatalf("action = %q", res.Action)
	}

	tasks := a.Scope.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Homework" {
		t.Errorf("title = %q, want Homework", got.Title)
	}
	if got.Time != "17:00" {
		t.Errorf("time = %q, want 17:00", got.Time)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", got.Priority)
	}
	if got.Notified || got.NotifiedBefore || got.Completed {
		t.Errorf("flags should start false: %+v", got)
	}
}

func TestUrgentTaskGetsHighPriority(t *testing.T) {
	a := newAssistant(t, noon)
	if _, err := a.Interpret("Remind me to submit the urgent assignment at 3 PM"); err != nil {
		t.Fatal(err)
	}
	tasks := a.Scope.Tasks()
	if len(tasks) != 1 || tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("expected one high priority task, got %+v", tasks)
	}
}

func TestExamAnnouncementCreatesEvents(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Tomorrow I have English exam at 9:30 AM and Math at 2 PM")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "event_added" {
		t.Fatalf("action = %q", res.Action)
	}

	events := a.Scope.Events()
	if len(events) != 2 {
		t.Fatalf("expected exactly 2 events, got %d", len(events))
	}
	tomorrow := noon.AddDate(0, 0, 1).Format("2006-01-02")
	want := map[string]string{
		"English Exam":     "09:30",
		"Mathematics Exam": "14:00",
	}
	for _, e := range events {
		clock, ok := want[e.Title]
		if !ok {
			t.Fatalf("unexpected event title %q", e.Title)
		}
		if e.Time != clock {
			t.Errorf("%s time = %q, want %q", e.Title, e.Time, clock)
		}
		if e.Date != tomorrow {
			t.Errorf("%s date = %q, want %q", e.Title, e.Date, tomorrow)
		}
		if e.Type != model.EventAcademic {
			t.Errorf("%s type = %q, want academic", e.Title, e.Type)
		}
		delete(want, e.Title)
	}
}

func TestEventWithoutDateDoesNotMutate(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Add a meeting with the professor")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "" {
		t.Fatalf("clarification must carry no action, got %q", res.Action)
	}
	if len(a.Scope.Events()) != 0 || len(a.Scope.Tasks()) != 0 {
		t.Fatal("clarification must not mutate any collection")
	}
}

func TestMarkDateWithoutDateDoesNotMutate(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Mark my special day")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "" {
		t.Fatalf("clarification must carry no action, got %q", res.Action)
	}
	if len(a.Scope.ImportantDates()) != 0 {
		t.Fatal("clarification must not mutate the date collection")
	}
}

func TestMarkImportantDate(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Mark Christmas day on December 25")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "date_marked" {
		t.Fatalf("action = %q", res.Action)
	}
	dates := a.Scope.ImportantDates()
	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}
	if dates[0].Date != "2026-12-25" {
		t.Errorf("date = %q, want 2026-12-25", dates[0].Date)
	}
	if dates[0].Title != "Christmas" {
		t.Errorf("title = %q, want Christmas", dates[0].Title)
	}
}

func TestDeleteTaskByTitleSubstring(t *testing.T) {
	a := newAssistant(t, noon)
	if err := a.Scope.AddTask(model.Task{ID: "1", Title: "Morning Jog", Time: "06:30", Priority: model.PriorityLow}); err != nil {
		t.Fatal(err)
	}
	res, err := a.Interpret("Please delete the morning jog task")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "task_deleted" {
		t.Fatalf("action = %q", res.Action)
	}
	if len(a.Scope.Tasks()) != 0 {
		t.Fatal("task should be removed")
	}
}

func TestDeleteUnknownTaskAsksForClarification(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Delete the quantum physics task")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "" {
		t.Fatalf("no action expected, got %q", res.Action)
	}
	if !strings.Contains(res.Response, "couldn't find") {
		t.Fatalf("expected clarification, got %q", res.Response)
	}
}

func TestClearAllTasks(t *testing.T) {
	a := newAssistant(t, noon)
	if err := a.Scope.AddTask(model.Task{ID: "1", Title: "One", Time: "09:00", Priority: model.PriorityLow}); err != nil {
		t.Fatal(err)
	}
	res, err := a.Interpret("Clear all my tasks")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "all_tasks_cleared" {
		t.Fatalf("action = %q", res.Action)
	}
	if len(a.Scope.Tasks()) != 0 {
		t.Fatal("tasks should be cleared")
	}
}

func TestCompleteTaskByTitle(t *testing.T) {
	a := newAssistant(t, noon)
	if err := a.Scope.AddTask(model.Task{ID: "1", Title: "Homework", Time: "17:00", Priority: model.PriorityMedium}); err != nil {
		t.Fatal(err)
	}
	res, err := a.Interpret("Mark homework as done")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "task_completed" {
		t.Fatalf("action = %q", res.Action)
	}
	tasks := a.Scope.Tasks()
	if !tasks[0].Completed {
		t.Fatal("task should be completed, not removed")
	}
}

func TestNavigateIntent(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Show me my calendar")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "navigate_calendar" {
		t.Fatalf("action = %q", res.Action)
	}
	res, err = a.Interpret("Show goal timetable")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "navigate_goaltimetable" {
		t.Fatalf("action = %q", res.Action)
	}
}

func TestDefaultRoutineCreation(t *testing.T) {
	a := newAssistant(t, noon)
	// "create" would trip the task catch-all, which sits ahead of the
	// routine rule in the chain.
	res, err := a.Interpret("I'd like a daily routine")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "routine_created" {
		t.Fatalf("action = %q", res.Action)
	}
	tasks := a.Scope.Tasks()
	if len(tasks) != 6 {
		t.Fatalf("expected 6 routine tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Morning Study Session" || tasks[0].Time != "09:00" || tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected first routine task: %+v", tasks[0])
	}
	if tasks[5].Title != "Evening Revision" || tasks[5].Time != "19:00" || tasks[5].Priority != model.PriorityMedium {
		t.Fatalf("unexpected last routine task: %+v", tasks[5])
	}
}

func TestCustomStudyTimetable(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("Study timetable for english at 4 pm and history at 6 pm")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "custom_timetable_created" {
		t.Fatalf("action = %q", res.Action)
	}
	tasks := a.Scope.Tasks()
	// Two study blocks plus one break between them.
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "English Study" || tasks[0].Time != "16:00" {
		t.Fatalf("unexpected first block: %+v", tasks[0])
	}
	if tasks[1].Title != "Short Break" || tasks[1].Time != "17:00" {
		t.Fatalf("unexpected break: %+v", tasks[1])
	}
	if tasks[2].Title != "History Study" || tasks[2].Time != "18:00" {
		t.Fatalf("unexpected second block: %+v", tasks[2])
	}
}

func TestStudyTipsAdvice(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("give me some tips to focus")
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "" {
		t.Fatalf("advice carries no action, got %q", res.Action)
	}
	if !strings.Contains(res.Response, "Pomodoro") {
		t.Fatalf("expected study tips, got %q", res.Response)
	}
	if len(a.Scope.Tasks()) != 0 {
		t.Fatal("advice must not mutate")
	}
}

func TestUnknownInputGetsHelp(t *testing.T) {
	a := newAssistant(t, noon)
	res, err := a.Interpret("zzz qqq")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Response, "I can help you with") {
		t.Fatalf("expected help text, got %q", res.Response)
	}
}
