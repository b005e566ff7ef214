package timetable

import (
	"testing"
	"time"

	"tableflip.dev/studyhall/pkg/store"
)

func newService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	s, err := store.Open(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	clock := &fakeClock{at: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
	return &Service{Scope: s.Scope("alice@example.com"), Now: clock.now}, clock
}

type fakeClock struct {
	at time.Time
}

func (f *fakeClock) now() time.Time { return f.at }

func (f *fakeClock) advance(d time.Duration) { f.at = f.at.Add(d) }

func TestSetGoalGeneratesTimetable(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.SetGoal("pass algorithms", "graduate with honors"); err != nil {
		t.Fatal(err)
	}
	goal, ok := svc.Scope.Goal()
	if !ok || goal.ShortTerm != "pass algorithms" {
		t.Fatalf("goal not saved: %+v ok=%v", goal, ok)
	}
	tasks := svc.Scope.Timetable()
	if len(tasks) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Completed || task.StarClaimed {
			t.Fatalf("fresh entry %s should be incomplete and unclaimed", task.ID)
		}
	}
	progress := svc.Scope.Progress()
	if progress.TotalTasks != 12 || progress.CompletedTasks != 0 {
		t.Fatalf("unexpected progress: %+v", progress)
	}
}

func TestToggleCompleteRecountsProgress(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Regenerate(); err != nil {
		t.Fatal(err)
	}
	task, err := svc.ToggleComplete("3")
	if err != nil {
		t.Fatal(err)
	}
	if !task.Completed {
		t.Fatal("toggle should mark entry complete")
	}
	if got := svc.Scope.Progress().CompletedTasks; got != 1 {
		t.Fatalf("completed count = %d, want 1", got)
	}

	task, err = svc.ToggleComplete("3")
	if err != nil {
		t.Fatal(err)
	}
	if task.Completed {
		t.Fatal("second toggle should mark entry incomplete")
	}
	if got := svc.Scope.Progress().CompletedTasks; got != 0 {
		t.Fatalf("completed count = %d, want 0", got)
	}

	if _, err := svc.ToggleComplete("no-such-id"); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClaimStarOncePerEntry(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Regenerate(); err != nil {
		t.Fatal(err)
	}

	// Incomplete entries are not claimable.
	claimed, progress, err := svc.ClaimStar("1")
	if err != nil {
		t.Fatal(err)
	}
	if claimed || progress.StarsEarned != 0 {
		t.Fatalf("claim on incomplete entry: claimed=%v progress=%+v", claimed, progress)
	}

	if _, err := svc.ToggleComplete("1"); err != nil {
		t.Fatal(err)
	}
	claimed, progress, err = svc.ClaimStar("1")
	if err != nil {
		t.Fatal(err)
	}
	if !claimed || progress.StarsEarned != 1 {
		t.Fatalf("first claim: claimed=%v progress=%+v", claimed, progress)
	}

	claimed, progress, err = svc.ClaimStar("1")
	if err != nil {
		t.Fatal(err)
	}
	if claimed || progress.StarsEarned != 1 {
		t.Fatalf("double claim should be a no-op: claimed=%v progress=%+v", claimed, progress)
	}
}

func TestRegeneratePreservesStars(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleComplete("2"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.ClaimStar("2"); err != nil {
		t.Fatal(err)
	}

	if err := svc.Regenerate(); err != nil {
		t.Fatal(err)
	}
	progress := svc.Scope.Progress()
	if progress.StarsEarned != 1 {
		t.Fatalf("stars should survive regeneration, got %d", progress.StarsEarned)
	}
	if progress.CompletedTasks != 0 {
		t.Fatalf("completed count should reset, got %d", progress.CompletedTasks)
	}
	for _, task := range svc.Scope.Timetable() {
		if task.Completed || task.StarClaimed {
			t.Fatalf("regenerated entry %s should be reset", task.ID)
		}
	}
}

func TestRewardDebounce(t *testing.T) {
	svc, clock := newService(t)
	if err := svc.Regenerate(); err != nil {
		t.Fatal(err)
	}

	awarded, progress, err := svc.Reward()
	if err != nil {
		t.Fatal(err)
	}
	if !awarded || progress.StarsEarned != 1 {
		t.Fatalf("first reward: awarded=%v progress=%+v", awarded, progress)
	}

	clock.advance(time.Second)
	awarded, progress, err = svc.Reward()
	if err != nil {
		t.Fatal(err)
	}
	if awarded || progress.StarsEarned != 1 {
		t.Fatalf("reward inside debounce window: awarded=%v progress=%+v", awarded, progress)
	}

	clock.advance(3 * time.Second)
	awarded, progress, err = svc.Reward()
	if err != nil {
		t.Fatal(err)
	}
	if !awarded || progress.StarsEarned != 2 {
		t.Fatalf("reward after debounce window: awarded=%v progress=%+v", awarded, progress)
	}
}

func TestMilestoneMessage(t *testing.T) {
	cases := map[int]string{
		0:  "Complete tasks to earn your first star!",
		1:  "Your journey begins! Keep going!",
		5:  "Nice work! Stars are adding up!",
		12: "Great momentum! Keep collecting stars!",
		25: "Incredible progress! You're on fire!",
		40: "Amazing dedication! Keep shining!",
		50: "Superstar! You're unstoppable!",
	}
	for stars, want := range cases {
		if got := MilestoneMessage(stars); got != want {
			t.Errorf("MilestoneMessage(%d) = %q, want %q", stars, got, want)
		}
	}
}

func TestGenerateEveningOrdering(t *testing.T) {
	plan := Generate()
	byID := map[string]string{}
	for _, entry := range plan {
		byID[entry.ID] = entry.Title
	}
	if byID["10"] != "Evening Break" {
		t.Errorf("entry 10 = %q, want Evening Break", byID["10"])
	}
	if byID["11"] != "Goal Progress Review" {
		t.Errorf("entry 11 = %q, want Goal Progress Review", byID["11"])
	}
	if byID["12"] != "Light Reading/Revision" {
		t.Errorf("entry 12 = %q, want Light Reading/Revision", byID["12"])
	}
}
