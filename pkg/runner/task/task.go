package task

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Add creates a task and reprints the schedule.
type Add struct {
	Scope *store.Scope

	Title       string
	Description string
	Time        string
	Priority    string

	ShowID bool
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("requires a title")
	}
	if a.Time == "" {
		return errors.New("requires a time, example: --time=17:00")
	}
	hour, minute, err := timeutil.ParseClock(a.Time)
	if err != nil {
		return fmt.Errorf("invalid time %q, want HH:MM", a.Time)
	}

	priority := model.Priority(a.Priority)
	if a.Priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return fmt.Errorf("invalid priority %q, want high, medium or low", a.Priority)
	}

	if err := a.Scope.AddTask(model.Task{
		ID:          uuid.NewString(),
		Title:       a.Title,
		Description: a.Description,
		Time:        timeutil.MakeClock(hour, minute),
		Priority:    priority,
	}); err != nil {
		return err
	}

	list := List{Scope: a.Scope, ShowID: a.ShowID}
	return list.Do(ctx)
}

// List prints the schedule ordered by priority, then time.
type List struct {
	Scope *store.Scope

	Pending bool
	ShowID  bool
}

func (l *List) Do(_ context.Context) error {
	tasks := l.Scope.Tasks()
	if l.Pending {
		kept := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		tasks = kept
	}

	sortSchedule(tasks)

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("Schedule", len(tasks))
	pp.Tasks(tasks...)
	return nil
}

// sortSchedule orders the schedule by priority rank, then start time.
func sortSchedule(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return tasks[i].Time < tasks[j].Time
	})
}

// find resolves a task by id first, then by case-insensitive title
// substring.
func find(scope *store.Scope, id, title string) (model.Task, error) {
	tasks := scope.Tasks()
	if id != "" {
		for _, t := range tasks {
			if t.ID == id {
				return t, nil
			}
		}
		return model.Task{}, fmt.Errorf("no task with id %q", id)
	}
	needle := strings.ToLower(title)
	if needle == "" {
		return model.Task{}, errors.New("requires an id or a title")
	}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			return t, nil
		}
	}
	return model.Task{}, fmt.Errorf("no task matching %q", title)
}

// Complete marks a task done. Done tasks stop notifying.
type Complete struct {
	Scope *store.Scope

	ID     string
	Title  string
	ShowID bool
}

func (c *Complete) Do(ctx context.Context) error {
	t, err := find(c.Scope, c.ID, c.Title)
	if err != nil {
		return err
	}
	t.Completed = true
	if err := c.Scope.UpdateTask(t); err != nil {
		return err
	}

	list := List{Scope: c.Scope, ShowID: c.ShowID}
	return list.Do(ctx)
}

// Remove deletes a task.
type Remove struct {
	Scope *store.Scope

	ID     string
	Title  string
	ShowID bool
}

func (r *Remove) Do(ctx context.Context) error {
	t, err := find(r.Scope, r.ID, r.Title)
	if err != nil {
		return err
	}
	if _, err := r.Scope.RemoveTask(t.ID); err != nil {
		return err
	}

	list := List{Scope: r.Scope, ShowID: r.ShowID}
	return list.Do(ctx)
}

// Clear wipes the whole schedule.
type Clear struct {
	Scope *store.Scope
}

func (c *Clear) Do(_ context.Context) error {
	if err := c.Scope.ClearTasks(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Schedule cleared")
	return nil
}
