package store

import (
	"errors"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/session"
)

// Logical collection keys. Each is namespaced per identity via session.Key
// before touching disk.
const (
	KeyTasks          = "tasks"
	KeyEvents         = "collegeEvents"
	KeyImportantDates = "importantDates"
	KeyProfile        = "userProfile"
	KeyGoal           = "goals"
	KeyTimetable      = "goalTimetable"
	KeyProgress       = "goalProgress"
	KeyBirthdayWish   = "lastBirthdayWish"
)

// ErrNotFound is returned by update/remove operations that matched nothing.
var ErrNotFound = errors.New("store: no such record")

// Scope is the per-identity view over a Store. All reads and writes resolve
// their keys against the scope identity, so records of different identities
// never mix.
type Scope struct {
	s        *Store
	identity string
}

// Scope returns the view for the given session identity. An empty identity
// addresses the shared legacy namespace.
func (s *Store) Scope(identity string) *Scope {
	return &Scope{s: s, identity: identity}
}

func (c *Scope) key(name string) string {
	return session.Key(name, c.identity)
}

// Identity reports the identity this scope resolves keys against.
func (c *Scope) Identity() string {
	return c.identity
}

// ---- tasks ----

func (c *Scope) Tasks() []model.Task {
	return loadSlice[model.Task](c.s, c.key(KeyTasks))
}

func (c *Scope) SaveTasks(tasks []model.Task) error {
	return saveSlice(c.s, c.key(KeyTasks), tasks)
}

func (c *Scope) AddTask(t model.Task) error {
	return c.SaveTasks(append(c.Tasks(), t))
}

// UpdateTask replaces the task with the same id.
func (c *Scope) UpdateTask(t model.Task) error {
	tasks := c.Tasks()
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
			return c.SaveTasks(tasks)
		}
	}
	return ErrNotFound
}

// RemoveTask deletes by id and returns the removed task.
func (c *Scope) RemoveTask(id string) (model.Task, error) {
	tasks := c.Tasks()
	for i, t := range tasks {
		if t.ID == id {
			if err := c.SaveTasks(append(tasks[:i], tasks[i+1:]...)); err != nil {
				return model.Task{}, err
			}
			return t, nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (c *Scope) ClearTasks() error {
	return c.SaveTasks([]model.Task{})
}

// ---- events ----

func (c *Scope) Events() []model.CollegeEvent {
	return loadSlice[model.CollegeEvent](c.s, c.key(KeyEvents))
}

func (c *Scope) SaveEvents(events []model.CollegeEvent) error {
	return saveSlice(c.s, c.key(KeyEvents), events)
}

func (c *Scope) AddEvent(e model.CollegeEvent) error {
	return c.SaveEvents(append(c.Events(), e))
}

func (c *Scope) RemoveEvent(id string) (model.CollegeEvent, error) {
	events := c.Events()
	for i, e := range events {
		if e.ID == id {
			if err := c.SaveEvents(append(events[:i], events[i+1:]...)); err != nil {
				return model.CollegeEvent{}, err
			}
			return e, nil
		}
	}
	return model.CollegeEvent{}, ErrNotFound
}

func (c *Scope) ClearEvents() error {
	return c.SaveEvents([]model.CollegeEvent{})
}

// ---- important dates ----

func (c *Scope) ImportantDates() []model.ImportantDate {
	return loadSlice[model.ImportantDate](c.s, c.key(KeyImportantDates))
}

func (c *Scope) SaveImportantDates(dates []model.ImportantDate) error {
	return saveSlice(c.s, c.key(KeyImportantDates), dates)
}

func (c *Scope) AddImportantDate(d model.ImportantDate) error {
	return c.SaveImportantDates(append(c.ImportantDates(), d))
}

func (c *Scope) RemoveImportantDate(id string) (model.ImportantDate, error) {
	dates := c.ImportantDates()
	for i, d := range dates {
		if d.ID == id {
			if err := c.SaveImportantDates(append(dates[:i], dates[i+1:]...)); err != nil {
				return model.ImportantDate{}, err
			}
			return d, nil
		}
	}
	return model.ImportantDate{}, ErrNotFound
}

// ---- profile ----

func (c *Scope) Profile() (model.UserProfile, bool) {
	return loadValue[model.UserProfile](c.s, c.key(KeyProfile))
}

func (c *Scope) SaveProfile(p model.UserProfile) error {
	return saveValue(c.s, c.key(KeyProfile), p)
}

// ---- goal, timetable, progress ----

func (c *Scope) Goal() (model.Goal, bool) {
	return loadValue[model.Goal](c.s, c.key(KeyGoal))
}

func (c *Scope) SaveGoal(g model.Goal) error {
	return saveValue(c.s, c.key(KeyGoal), g)
}

func (c *Scope) Timetable() []model.TimetableTask {
	return loadSlice[model.TimetableTask](c.s, c.key(KeyTimetable))
}

func (c *Scope) SaveTimetable(tasks []model.TimetableTask) error {
	return saveSlice(c.s, c.key(KeyTimetable), tasks)
}

func (c *Scope) Progress() model.GoalProgress {
	p, _ := loadValue[model.GoalProgress](c.s, c.key(KeyProgress))
	return p
}

func (c *Scope) SaveProgress(p model.GoalProgress) error {
	return saveValue(c.s, c.key(KeyProgress), p)
}

// ---- birthday wish stamp ----

// LastBirthdayWish returns the date stamp of the most recent wish, or "".
// Namespaced per identity so one user's wish never suppresses another's.
func (c *Scope) LastBirthdayWish() string {
	data, ok := c.s.Read(c.key(KeyBirthdayWish))
	if !ok {
		return ""
	}
	return string(data)
}

func (c *Scope) SetLastBirthdayWish(stamp string) error {
	return c.s.Write(c.key(KeyBirthdayWish), []byte(stamp))
}
