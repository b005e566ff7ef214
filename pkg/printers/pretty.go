package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func priorityColor(p model.Priority) *color.Color {
	switch p {
	case model.PriorityHigh:
		return color.New(color.FgRed)
	case model.PriorityLow:
		return color.New(color.FgGreen)
	}
	return color.New(color.FgYellow)
}

func eventColor(t model.EventType) *color.Color {
	switch t {
	case model.EventCultural:
		return color.New(color.FgMagenta)
	case model.EventSports:
		return color.New(color.FgGreen)
	case model.EventOther:
		return color.New(color.Faint)
	}
	return color.New(color.FgCyan)
}

func (pp *PrettyPrint) Tasks(tasks ...model.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "TIME", "TITLE", "PRIORITY", "STATUS")
	} else {
		table.AddRow("TIME", "TITLE", "PRIORITY", "STATUS")
	}
	for _, t := range tasks {
		status := "pending"
		if t.Completed {
			status = "done"
		}
		priority := priorityColor(t.Priority).Sprint(t.Priority)
		if pp.ShowID {
			table.AddRow(t.ID, timeutil.Format12(t.Time), t.Title, priority, status)
		} else {
			table.AddRow(timeutil.Format12(t.Time), t.Title, priority, status)
		}
	}
	fmt.Fprintln(color.Output, table)
	pp.NewLine()
}

func (pp *PrettyPrint) Events(events ...model.CollegeEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TIME", "TITLE", "TYPE", "LOCATION")
	} else {
		table.AddRow("DATE", "TIME", "TITLE", "TYPE", "LOCATION")
	}
	for _, e := range events {
		kind := eventColor(e.Type).Sprint(e.Type)
		if pp.ShowID {
			table.AddRow(e.ID, e.Date, timeutil.Format12(e.Time), e.Title, kind, e.Location)
		} else {
			table.AddRow(e.Date, timeutil.Format12(e.Time), e.Title, kind, e.Location)
		}
	}
	fmt.Fprintln(color.Output, table)
	pp.NewLine()
}

func (pp *PrettyPrint) Dates(dates ...model.ImportantDate) {
	if len(dates) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TITLE", "DESCRIPTION")
	} else {
		table.AddRow("DATE", "TITLE", "DESCRIPTION")
	}
	for _, d := range dates {
		if pp.ShowID {
			table.AddRow(d.ID, d.Date, d.Title, d.Description)
		} else {
			table.AddRow(d.Date, d.Title, d.Description)
		}
	}
	fmt.Fprintln(color.Output, table)
	pp.NewLine()
}

func (pp *PrettyPrint) Timetable(tasks ...model.TimetableTask) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("ID", "TIME", "DURATION", "TITLE", "STATUS")
	for _, t := range tasks {
		var status string
		switch {
		case t.StarClaimed:
			status = color.New(color.FgYellow).Sprint("* claimed")
		case t.Completed:
			status = color.New(color.FgGreen).Sprint("done")
		default:
			status = "pending"
		}
		table.AddRow(t.ID, t.Time, t.Duration, t.Title, status)
	}
	fmt.Fprintln(color.Output, table)
	pp.NewLine()
}

func (pp *PrettyPrint) Progress(p model.GoalProgress, milestone, progress string) {
	b := color.New(color.Bold)
	_, _ = b.Printf("Progress: %d/%d tasks", p.CompletedTasks, p.TotalTasks)
	pp.NewLine()
	_, _ = color.New(color.FgYellow).Printf("Stars earned: %d\n", p.StarsEarned)
	fmt.Fprintln(color.Output, milestone)
	fmt.Fprintln(color.Output, progress)
}

func (pp *PrettyPrint) Profile(p model.UserProfile) {
	table := uitable.New()
	table.AddRow("Name:", p.Name)
	table.AddRow("Email:", p.Email)
	table.AddRow("Birthday:", p.Birthday)
	table.AddRow("College:", p.College)
	table.AddRow("Course:", p.Course)
	table.AddRow("Year:", p.Year)
	if born, err := time.Parse(timeutil.LayoutISO, p.Birthday); err == nil {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		next := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		age := today.Year() - born.Year()
		if next.After(today) {
			age--
		}
		table.AddRow("Age:", fmt.Sprintf("%d", age))
		if next.Before(today) {
			next = next.AddDate(1, 0, 0)
		}
		if next.Equal(today) {
			table.AddRow("Next birthday:", "today, happy birthday!")
		} else {
			table.AddRow("Next birthday:", fmt.Sprintf("in %d days", int(next.Sub(today).Hours()/24)))
		}
	}
	fmt.Fprintln(color.Output, table)
}

func (pp *PrettyPrint) Goal(g model.Goal) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("Short term:", g.ShortTerm)
	table.AddRow("Long term:", g.LongTerm)
	table.AddRow("Set on:", g.CreatedAt)
	fmt.Fprintln(color.Output, table)
}

// Response renders assistant output, indenting each line under a marker.
func (pp *PrettyPrint) Response(text string) {
	m := color.New(color.FgCyan, color.Bold)
	_, _ = m.Print("assistant> ")
	lines := strings.Split(text, "\n")
	fmt.Fprintln(color.Output, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(color.Output, line)
	}
	pp.NewLine()
}
