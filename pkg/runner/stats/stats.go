package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Summary aggregates productivity counters for one identity.
type Summary struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	HighPriority   int
	UpcomingEvents int
	ImportantDates int
	StarsEarned    int
}

// Compute derives the summary from the stored collections. today is the
// ISO cutoff for upcoming events.
func Compute(scope *store.Scope, today string) Summary {
	var s Summary
	for _, t := range scope.Tasks() {
		s.TotalTasks++
		if t.Completed {
			s.CompletedTasks++
			continue
		}
		s.PendingTasks++
		if t.Priority == model.PriorityHigh {
			s.HighPriority++
		}
	}
	for _, e := range scope.Events() {
		if e.Date >= today {
			s.UpcomingEvents++
		}
	}
	s.ImportantDates = len(scope.ImportantDates())
	s.StarsEarned = scope.Progress().StarsEarned
	return s
}

// CompletionRate is a percentage, 0 when no tasks exist.
func (s Summary) CompletionRate() int {
	if s.TotalTasks == 0 {
		return 0
	}
	return s.CompletedTasks * 100 / s.TotalTasks
}

// Stats prints the analytics summary.
type Stats struct {
	Scope *store.Scope

	Today string // ISO date override for tests; empty means today
}

func (st *Stats) Do(_ context.Context) error {
	today := st.Today
	if today == "" {
		today = time.Now().Format(timeutil.LayoutISO)
	}
	s := Compute(st.Scope, today)

	pp := printers.PrettyPrint{}
	pp.Title("Analytics")

	table := uitable.New()
	table.AddRow("Tasks:", fmt.Sprintf("%d total, %d done, %d pending", s.TotalTasks, s.CompletedTasks, s.PendingTasks))
	table.AddRow("Completion:", fmt.Sprintf("%d%%", s.CompletionRate()))
	table.AddRow("High priority open:", fmt.Sprintf("%d", s.HighPriority))
	table.AddRow("Upcoming events:", fmt.Sprintf("%d", s.UpcomingEvents))
	table.AddRow("Important dates:", fmt.Sprintf("%d", s.ImportantDates))
	table.AddRow("Stars earned:", fmt.Sprintf("%d", s.StarsEarned))
	fmt.Fprintln(color.Output, table)
	return nil
}
