package timetable

import (
	"time"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/store"
)

// minStarInterval is the debounce window for the ungated reward trigger.
const minStarInterval = 2000 * time.Millisecond

// Generate returns the fixed daily study template, all entries incomplete
// and unclaimed. Times and durations are display strings, not schedule
// input; the plan is the same regardless of the goal text.
func Generate() []model.TimetableTask {
	return []model.TimetableTask{
		{ID: "1", Title: "Morning Review Session", Time: "07:00 AM", Duration: "30 min", Day: "Daily"},
		{ID: "2", Title: "Focus Study Block 1 - Core Subjects", Time: "08:00 AM", Duration: "90 min", Day: "Daily"},
		{ID: "3", Title: "Short Break & Refresh", Time: "09:30 AM", Duration: "15 min", Day: "Daily"},
		{ID: "4", Title: "Focus Study Block 2 - Practice", Time: "10:00 AM", Duration: "90 min", Day: "Daily"},
		{ID: "5", Title: "Active Learning Activity", Time: "11:30 AM", Duration: "30 min", Day: "Daily"},
		{ID: "6", Title: "Lunch & Rest", Time: "12:30 PM", Duration: "60 min", Day: "Daily"},
		{ID: "7", Title: "Light Study Session", Time: "02:00 PM", Duration: "60 min", Day: "Daily"},
		{ID: "8", Title: "Problem-Solving Practice", Time: "03:30 PM", Duration: "90 min", Day: "Daily"},
		{ID: "9", Title: "Revision Session", Time: "05:30 PM", Duration: "60 min", Day: "Daily"},
		{ID: "10", Title: "Evening Break", Time: "06:30 PM", Duration: "30 min", Day: "Daily"},
		{ID: "11", Title: "Goal Progress Review", Time: "08:00 PM", Duration: "30 min", Day: "Daily"},
		{ID: "12", Title: "Light Reading/Revision", Time: "09:00 PM", Duration: "45 min", Day: "Daily"},
	}
}

// Service operates on one identity's goal, timetable, and progress.
type Service struct {
	Scope *store.Scope
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetGoal stores the goal pair and regenerates the timetable. Setting a
// goal always replaces the current timetable.
func (s *Service) SetGoal(shortTerm, longTerm string) error {
	goal := model.Goal{
		ShortTerm: shortTerm,
		LongTerm:  longTerm,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	if err := s.Scope.SaveGoal(goal); err != nil {
		return err
	}
	return s.Regenerate()
}

// Regenerate replaces the whole timetable with a fresh template and resets
// the completion counters. Cumulative stars survive regeneration.
func (s *Service) Regenerate() error {
	generated := Generate()
	if err := s.Scope.SaveTimetable(generated); err != nil {
		return err
	}
	prev := s.Scope.Progress()
	return s.Scope.SaveProgress(model.GoalProgress{
		CompletedTasks: 0,
		TotalTasks:     len(generated),
		StarsEarned:    prev.StarsEarned,
		LastStarTime:   prev.LastStarTime,
	})
}

// ToggleComplete flips completion for the given entry and recomputes the
// completed count from the collection rather than incrementing it, so the
// counter can never drift.
func (s *Service) ToggleComplete(id string) (model.TimetableTask, error) {
	tasks := s.Scope.Timetable()
	var toggled model.TimetableTask
	found := false
	completed := 0
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			toggled = tasks[i]
			found = true
		}
		if tasks[i].Completed {
			completed++
		}
	}
	if !found {
		return model.TimetableTask{}, store.ErrNotFound
	}
	if err := s.Scope.SaveTimetable(tasks); err != nil {
		return model.TimetableTask{}, err
	}
	progress := s.Scope.Progress()
	progress.CompletedTasks = completed
	progress.TotalTasks = len(tasks)
	if err := s.Scope.SaveProgress(progress); err != nil {
		return model.TimetableTask{}, err
	}
	return toggled, nil
}

// ClaimStar awards exactly one star for a completed, unclaimed entry.
// Ineligible ids are a no-op, not an error.
func (s *Service) ClaimStar(id string) (bool, model.GoalProgress, error) {
	tasks := s.Scope.Timetable()
	progress := s.Scope.Progress()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if !tasks[i].Completed || tasks[i].StarClaimed {
			return false, progress, nil
		}
		tasks[i].StarClaimed = true
		if err := s.Scope.SaveTimetable(tasks); err != nil {
			return false, progress, err
		}
		ms := s.now().UnixMilli()
		progress.StarsEarned++
		progress.LastStarTime = &ms
		if err := s.Scope.SaveProgress(progress); err != nil {
			return false, progress, err
		}
		return true, progress, nil
	}
	return false, progress, nil
}

// Reward is the ungated star trigger: it awards a star only when at least
// two seconds have passed since the previous one. Independent from, and
// additive with, per-entry claims.
func (s *Service) Reward() (bool, model.GoalProgress, error) {
	progress := s.Scope.Progress()
	now := s.now().UnixMilli()
	if progress.LastStarTime != nil && now-*progress.LastStarTime <= minStarInterval.Milliseconds() {
		return false, progress, nil
	}
	progress.StarsEarned++
	progress.LastStarTime = &now
	if err := s.Scope.SaveProgress(progress); err != nil {
		return false, progress, err
	}
	return true, progress, nil
}

// Milestone labels keyed by star thresholds, in ascending order.
var Milestones = []struct {
	Target int
	Label  string
}{
	{5, "Beginner Star Collector"},
	{10, "Rising Star"},
	{20, "Star Champion"},
	{30, "Star Master"},
	{50, "Star Legend"},
}

// MilestoneMessage summarizes the star count against the thresholds.
func MilestoneMessage(stars int) string {
	switch {
	case stars >= 50:
		return "Superstar! You're unstoppable!"
	case stars >= 30:
		return "Amazing dedication! Keep shining!"
	case stars >= 20:
		return "Incredible progress! You're on fire!"
	case stars >= 10:
		return "Great momentum! Keep collecting stars!"
	case stars >= 5:
		return "Nice work! Stars are adding up!"
	case stars >= 1:
		return "Your journey begins! Keep going!"
	}
	return "Complete tasks to earn your first star!"
}

// ProgressMessage summarizes completion percentage.
func ProgressMessage(completed, total int) string {
	if total == 0 {
		return "Let's begin your journey to success!"
	}
	pct := completed * 100 / total
	switch {
	case pct >= 100:
		return "Amazing! You've completed all tasks!"
	case pct >= 75:
		return "Outstanding progress! Keep going!"
	case pct >= 50:
		return "Halfway there! You're doing great!"
	case pct >= 25:
		return "Great start! Keep up the momentum!"
	}
	return "Let's begin your journey to success!"
}
