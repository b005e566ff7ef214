// Package chat turns free-text messages into task, event, and date
// mutations. Classification is an ordered chain of intent rules over the
// lower-cased input; the first matching rule wins. The ordering is a
// behavioral contract: several trigger sets overlap and first-match-wins is
// the only disambiguation.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Result is one interpreted reply. Action is an opaque tag the presentation
// layer uses to follow up, e.g. rendering a listing after a navigation
// intent; empty means text only.
type Result struct {
	Response string
	Action   string
}

// Assistant interprets messages against one identity's data. Now and NewID
// default to the wall clock and random UUIDs; tests pin them.
type Assistant struct {
	Scope *store.Scope
	Now   func() time.Time
	NewID func() string
}

func (a *Assistant) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Assistant) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

// Greeting is the opening message of an interactive session.
func Greeting() string { return greeting }

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Interpret classifies one message and applies its side effects. Parsing
// failures degrade to a clarifying Result; the error return carries only
// storage failures.
func (a *Assistant) Interpret(message string) (Result, error) {
	lower := strings.ToLower(message)

	if containsAny(lower, "delete", "remove", "cancel", "clear") &&
		containsAny(lower, "task", "schedule", "event", "date") {
		return a.handleDelete(lower)
	}

	if containsAny(lower, "complete", "done", "finish", "mark as complete") &&
		(strings.Contains(lower, "task") || !strings.Contains(lower, "event")) {
		return a.handleComplete(lower)
	}

	if containsAny(lower, "show", "open", "view", "go to") {
		if r, ok := navigate(lower); ok {
			return r, nil
		}
	}

	if containsAny(lower, "mark", "make", "set", "add") &&
		containsAny(lower, "important", "special", "date", "day", "birthday", "anniversary", "holiday", "celebration") {
		return a.handleMarkDate(message, lower)
	}

	if containsAny(lower, "event", "exam", "test", "meeting", "class", "lecture",
		"seminar", "workshop", "conference", "fest", "tournament", "competition") {
		return a.handleAddEvent(message, lower)
	}

	if containsAny(lower, "add", "schedule", "remind", "set", "create", "plan",
		"need to", "have to", "want to", "going to") {
		return a.handleAddTask(message, lower)
	}

	if containsAny(lower, "routine", "daily plan", "study plan", "schedule for day",
		"create timetable", "study timetable", "make timetable", "time table") &&
		!containsAny(lower, "exam", "test") {
		return a.handleRoutine(lower)
	}

	if containsAny(lower, "exam", "test") &&
		containsAny(lower, "prepare", "schedule", "study", "routine", "plan", "timetable") {
		return a.handleExamPrep(message)
	}

	if containsAny(lower, "study", "tips", "focus") ||
		(strings.Contains(lower, "how to") && containsAny(lower, "learn", "concentrate")) {
		return Result{Response: studyTips}, nil
	}
	if containsAny(lower, "motivat", "tired", "stress", "overwhelm", "can't do", "give up") {
		return Result{Response: motivation}, nil
	}
	if containsAny(lower, "exam", "test", "preparation", "how to prepare") {
		return Result{Response: examAdvice}, nil
	}

	return Result{Response: helpText}, nil
}

func (a *Assistant) handleDelete(lower string) (Result, error) {
	if containsAny(lower, "all", "everything") {
		if strings.Contains(lower, "task") {
			if err := a.Scope.ClearTasks(); err != nil {
				return Result{}, err
			}
			return Result{
				Response: "All tasks have been cleared from your schedule. Ready for a fresh start!",
				Action:   "all_tasks_cleared",
			}, nil
		}
		if strings.Contains(lower, "event") {
			if err := a.Scope.ClearEvents(); err != nil {
				return Result{}, err
			}
			return Result{
				Response: "All events have been cleared!",
				Action:   "all_events_cleared",
			}, nil
		}
	}

	for _, t := range a.Scope.Tasks() {
		if !strings.Contains(lower, strings.ToLower(t.Title)) {
			continue
		}
		if _, err := a.Scope.RemoveTask(t.ID); err != nil {
			return Result{}, err
		}
		return Result{
			Response: fmt.Sprintf("I've removed %q from your schedule.", t.Title),
			Action:   "task_deleted",
		}, nil
	}
	return Result{
		Response: "I couldn't find that specific task. Could you tell me the exact name? You can also list tasks with: studyhall task list",
	}, nil
}

func (a *Assistant) handleComplete(lower string) (Result, error) {
	for _, t := range a.Scope.Tasks() {
		if !strings.Contains(lower, strings.ToLower(t.Title)) {
			continue
		}
		t.Completed = true
		if err := a.Scope.UpdateTask(t); err != nil {
			return Result{}, err
		}
		return Result{
			Response: fmt.Sprintf("Excellent! I've marked %q as completed. Great job staying productive!", t.Title),
			Action:   "task_completed",
		}, nil
	}
	return Result{
		Response: "Which task would you like to mark as complete? Please mention the task name.",
	}, nil
}

func navigate(lower string) (Result, bool) {
	switch {
	case strings.Contains(lower, "goal") ||
		(strings.Contains(lower, "timetable") && !strings.Contains(lower, "create")):
		return Result{
			Response: "Opening your goal timetable...\n\nSet your goals and get a generated study schedule to achieve them.",
			Action:   "navigate_goaltimetable",
		}, true
	case containsAny(lower, "schedule", "task"):
		return Result{Response: "Opening your scheduler...", Action: "navigate_scheduler"}, true
	case strings.Contains(lower, "event"):
		return Result{Response: "Opening your events page...", Action: "navigate_events"}, true
	case strings.Contains(lower, "calendar"):
		return Result{Response: "Opening your calendar...", Action: "navigate_calendar"}, true
	case containsAny(lower, "analytic", "statistic", "progress"):
		return Result{Response: "Opening your analytics dashboard...", Action: "navigate_analytics"}, true
	case strings.Contains(lower, "profile"):
		return Result{Response: "Opening your profile...", Action: "navigate_profile"}, true
	}
	return Result{}, false
}

func (a *Assistant) handleMarkDate(message, lower string) (Result, error) {
	dateStr := ExtractDate(message, a.now())
	if dateStr == "" {
		return Result{
			Response: "I'd love to mark that date! Could you specify when? For example:\n" +
				"  'Mark December 25 as Christmas'\n" +
				"  'Make tomorrow my special day'\n" +
				"  'Set next Monday as important'",
		}, nil
	}

	title := ExtractTitle(message, KindDate)
	if err := a.Scope.AddImportantDate(model.ImportantDate{
		ID:          a.newID(),
		Date:        dateStr,
		Title:       title,
		Description: "Marked via assistant",
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Response: fmt.Sprintf("Perfect! I've marked %s as %q in your calendar.\n\nIt will be highlighted whenever you check your schedule.", FormatDate(dateStr), title),
		Action:   "date_marked",
	}, nil
}

func (a *Assistant) handleAddEvent(message, lower string) (Result, error) {
	// Exam announcements that name subjects get one event per subject, and
	// a full preparation plan when the message also asks for one.
	if containsAny(lower, "exam", "test") {
		info := parseExamInfo(message, a.now())
		if info.Named {
			if containsAny(lower, "prepare", "schedule", "study", "routine", "plan", "timetable") {
				return a.applyExamPlan(info)
			}
			return a.addExamEvents(info)
		}
	}

	dateStr := ExtractDate(message, a.now())
	if dateStr == "" {
		return Result{
			Response: "I can add that event! When should it be? For example:\n" +
				"  'Add exam on November 30 at 9 AM'\n" +
				"  'Schedule meeting tomorrow at 2 PM'\n" +
				"  'Add workshop next Monday at 10 AM'",
		}, nil
	}

	clock := ExtractTime(message, a.now())
	title := ExtractTitle(message, KindEvent)
	eventType := classifyEvent(lower)

	if err := a.Scope.AddEvent(model.CollegeEvent{
		ID:          a.newID(),
		Title:       title,
		Description: "Added via assistant",
		Date:        dateStr,
		Time:        clock,
		Location:    "To be confirmed",
		Type:        eventType,
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Response: fmt.Sprintf("Awesome! I've added %q to your events.\n\n  Date:     %s\n  Time:     %s\n  Type:     %s\n  Location: To be confirmed\n\nView it with: studyhall event list",
			title, FormatDate(dateStr), clock, strings.ToUpper(string(eventType))),
		Action: "event_added",
	}, nil
}

func classifyEvent(lower string) model.EventType {
	switch {
	case containsAny(lower, "cultural", "fest", "celebration", "function", "festival", "party"):
		return model.EventCultural
	case containsAny(lower, "sport", "game", "match", "tournament", "competition"):
		return model.EventSports
	case !containsAny(lower, "exam", "test", "class", "lecture", "seminar", "workshop"):
		return model.EventOther
	}
	return model.EventAcademic
}

func (a *Assistant) addExamEvents(info examInfo) (Result, error) {
	var b strings.Builder
	b.WriteString("I've added your exams to the events list:\n\n")
	for _, exam := range info.Exams {
		if err := a.Scope.AddEvent(model.CollegeEvent{
			ID:          a.newID(),
			Title:       exam.Subject + " Exam",
			Description: "Stay focused and confident!",
			Date:        exam.Date,
			Time:        exam.Time,
			Location:    exam.Location,
			Type:        model.EventAcademic,
		}); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(&b, "  %s  %s Exam (%s)\n", timeutil.Format12(exam.Time), exam.Subject, FormatDate(exam.Date))
	}
	b.WriteString("\nGood luck! Say 'create exam study plan' if you want a preparation schedule.")
	return Result{Response: b.String(), Action: "event_added"}, nil
}

func (a *Assistant) handleAddTask(message, lower string) (Result, error) {
	clock := ExtractTime(message, a.now())
	title := ExtractTitle(message, KindTask)
	priority := classifyPriority(lower)

	if err := a.Scope.AddTask(model.Task{
		ID:          a.newID(),
		Title:       title,
		Description: "Added via assistant",
		Time:        clock,
		Priority:    priority,
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Response: fmt.Sprintf("Done! I've added %q to your schedule.\n\n  Time:     %s\n  Priority: %s\n  Notifications: 5 min before + at start time\n\nAnything else you'd like to add?",
			title, clock, strings.ToUpper(string(priority))),
		Action: "task_added",
	}, nil
}

func classifyPriority(lower string) model.Priority {
	switch {
	case containsAny(lower, "important", "urgent", "critical", "asap", "priority", "must"):
		return model.PriorityHigh
	case containsAny(lower, "low priority", "optional", "when free", "if time", "maybe"):
		return model.PriorityLow
	}
	return model.PriorityMedium
}

func (a *Assistant) handleRoutine(lower string) (Result, error) {
	tasks, response := parseStudySchedule(lower, a.now())
	if len(tasks) > 0 {
		if err := a.addDrafts(tasks); err != nil {
			return Result{}, err
		}
		return Result{Response: response, Action: "custom_timetable_created"}, nil
	}

	if err := a.addDrafts(defaultRoutine()); err != nil {
		return Result{}, err
	}
	return Result{Response: routineResponse, Action: "routine_created"}, nil
}

func (a *Assistant) handleExamPrep(message string) (Result, error) {
	info := parseExamInfo(message, a.now())
	if len(info.Exams) == 0 {
		return Result{
			Response: "I couldn't detect specific exam details. Please tell me:\n" +
				"  Which subjects?\n" +
				"  What time are the exams?\n" +
				"  When are they (tomorrow / next week)?\n\n" +
				"Example: 'Tomorrow I have English at 9:30 AM and Math at 2 PM'",
		}, nil
	}
	return a.applyExamPlan(info)
}

func (a *Assistant) applyExamPlan(info examInfo) (Result, error) {
	tasks, response := buildExamPlan(info, a.now())
	if err := a.addDrafts(tasks); err != nil {
		return Result{}, err
	}
	for _, exam := range info.Exams {
		if err := a.Scope.AddEvent(model.CollegeEvent{
			ID:          a.newID(),
			Title:       exam.Subject + " Exam",
			Description: "Stay focused and confident!",
			Date:        exam.Date,
			Time:        exam.Time,
			Location:    exam.Location,
			Type:        model.EventAcademic,
		}); err != nil {
			return Result{}, err
		}
	}
	return Result{Response: response, Action: "exam_schedule_created"}, nil
}

func (a *Assistant) addDrafts(drafts []draftTask) error {
	for _, d := range drafts {
		if err := a.Scope.AddTask(model.Task{
			ID:          a.newID(),
			Title:       d.Title,
			Description: d.Description,
			Time:        d.Time,
			Priority:    d.Priority,
		}); err != nil {
			return err
		}
	}
	return nil
}
