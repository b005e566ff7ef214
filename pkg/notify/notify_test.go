package notify

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/store"
)

type recorded struct {
	title string
	body  string
}

type fakeNotifier struct {
	sent []recorded
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.sent = append(f.sent, recorded{title, body})
	return nil
}

func newScheduler(t *testing.T, at time.Time) (*Scheduler, *fakeNotifier) {
	t.Helper()
	s, err := store.Open(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	fake := &fakeNotifier{}
	return &Scheduler{
		Scope:    s.Scope("alice@example.com"),
		Notifier: fake,
		Log:      zerolog.Nop(),
		Now:      func() time.Time { return at },
	}, fake
}

func TestCheckOnceFiresAtStartTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sched, fake := newScheduler(t, now)
	if err := sched.Scope.AddTask(model.Task{
		ID: "1", Title: "Morning Review", Description: "Calculus notes", Time: "09:00", Priority: model.PriorityHigh,
	}); err != nil {
		t.Fatal(err)
	}

	sched.CheckOnce()

	if len(fake.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(fake.sent))
	}
	if fake.sent[0].title != "Time to Start: Morning Review" {
		t.Fatalf("unexpected title %q", fake.sent[0].title)
	}
	tasks := sched.Scope.Tasks()
	if !tasks[0].Notified {
		t.Fatal("notified flag should persist")
	}

	// A second check in the same minute must not fire again.
	sched.CheckOnce()
	if len(fake.sent) != 1 {
		t.Fatalf("flag is one-shot, got %d notifications", len(fake.sent))
	}
}

func TestCheckOnceFiresFiveMinuteWarning(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 55, 0, 0, time.UTC)
	sched, fake := newScheduler(t, now)
	if err := sched.Scope.AddTask(model.Task{
		ID: "1", Title: "Lecture", Time: "09:00", Priority: model.PriorityMedium,
	}); err != nil {
		t.Fatal(err)
	}

	sched.CheckOnce()

	if len(fake.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(fake.sent))
	}
	if fake.sent[0].title != "Starting Soon: Lecture" {
		t.Fatalf("unexpected title %q", fake.sent[0].title)
	}
	tasks := sched.Scope.Tasks()
	if !tasks[0].NotifiedBefore || tasks[0].Notified {
		t.Fatalf("only the warning flag should be set: %+v", tasks[0])
	}
}

func TestCompletedTasksNeverNotify(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sched, fake := newScheduler(t, now)
	if err := sched.Scope.AddTask(model.Task{
		ID: "1", Title: "Done Already", Time: "09:00", Priority: model.PriorityLow, Completed: true,
	}); err != nil {
		t.Fatal(err)
	}

	sched.CheckOnce()

	if len(fake.sent) != 0 {
		t.Fatalf("completed task notified: %+v", fake.sent)
	}
}

func TestBirthdayWishOncePerDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sched, fake := newScheduler(t, now)
	if err := sched.Scope.SaveProfile(model.UserProfile{
		Name:     "Alice",
		Email:    "alice@example.com",
		Birthday: "2004-03-14",
	}); err != nil {
		t.Fatal(err)
	}

	sched.CheckBirthday()
	sched.CheckBirthday()

	if len(fake.sent) != 1 {
		t.Fatalf("expected exactly one wish, got %d", len(fake.sent))
	}
	if fake.sent[0].title != "Happy Birthday, Alice!" {
		t.Fatalf("unexpected title %q", fake.sent[0].title)
	}
}

func TestBirthdayOtherDaysSilent(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	sched, fake := newScheduler(t, now)
	if err := sched.Scope.SaveProfile(model.UserProfile{
		Name:     "Alice",
		Birthday: "2004-03-14",
	}); err != nil {
		t.Fatal(err)
	}

	sched.CheckBirthday()

	if len(fake.sent) != 0 {
		t.Fatalf("no wish expected, got %+v", fake.sent)
	}
}
