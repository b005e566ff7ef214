package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tableflip.dev/studyhall/pkg/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestTaskRoundTrip(t *testing.T) {
	scope := testStore(t).Scope("")

	want := []model.Task{
		{ID: "1", Title: "Homework", Description: "chapter 4", Time: "17:00", Priority: model.PriorityHigh},
		{ID: "2", Title: "Revision", Time: "19:30", Priority: model.PriorityLow, Completed: true, Notified: true},
	}
	if err := scope.SaveTasks(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := scope.Tasks()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestUpdateAndRemoveMissing(t *testing.T) {
	scope := testStore(t).Scope("")

	if err := scope.UpdateTask(model.Task{ID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: got %v, want ErrNotFound", err)
	}
	if _, err := scope.RemoveTask("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove missing: got %v, want ErrNotFound", err)
	}
}

func TestRemoveReturnsTheRecord(t *testing.T) {
	scope := testStore(t).Scope("")

	if err := scope.AddTask(model.Task{ID: "1", Title: "Homework"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	removed, err := scope.RemoveTask("1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Title != "Homework" {
		t.Fatalf("removed the wrong record: %+v", removed)
	}
	if got := scope.Tasks(); len(got) != 0 {
		t.Fatalf("task left behind: %+v", got)
	}
}

func TestIdentitiesAreDisjoint(t *testing.T) {
	s := testStore(t)
	a := s.Scope("a@x.com")
	b := s.Scope("b@x.com")
	shared := s.Scope("")

	if err := a.AddTask(model.Task{ID: "1", Title: "A's task"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := shared.AddTask(model.Task{ID: "2", Title: "shared task"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := b.Tasks(); len(got) != 0 {
		t.Fatalf("b sees a's tasks: %+v", got)
	}
	if got := a.Tasks(); len(got) != 1 || got[0].Title != "A's task" {
		t.Fatalf("a's tasks polluted: %+v", got)
	}
	if got := shared.Tasks(); len(got) != 1 || got[0].Title != "shared task" {
		t.Fatalf("shared namespace polluted: %+v", got)
	}

	if err := a.SetLastBirthdayWish("2026-08-31"); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	if got := b.LastBirthdayWish(); got != "" {
		t.Fatalf("b inherited a's birthday stamp %q", got)
	}
}

func TestMalformedSnapshotReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(PathConfig(dir))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, KeyTasks), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("corrupt snapshot: %v", err)
	}

	scope := s.Scope("")
	if got := scope.Tasks(); len(got) != 0 {
		t.Fatalf("corrupt snapshot should read empty, got %+v", got)
	}
	if _, ok := scope.Profile(); ok {
		t.Fatal("missing profile should report ok=false")
	}
	if p := scope.Progress(); p.StarsEarned != 0 || p.LastStarTime != nil {
		t.Fatalf("missing progress should be zero, got %+v", p)
	}
}

func TestProfileSingleValue(t *testing.T) {
	scope := testStore(t).Scope("")

	want := model.UserProfile{Name: "Priya", Birthday: "2006-04-18", College: "State", Year: "2"}
	if err := scope.SaveProfile(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := scope.Profile()
	if !ok {
		t.Fatal("saved profile not found")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("profile mismatch: got %+v want %+v", got, want)
	}
}
