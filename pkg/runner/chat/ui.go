package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/studyhall/pkg/chat"
	"tableflip.dev/studyhall/pkg/runner/stats"
	"tableflip.dev/studyhall/pkg/timetable"
	"tableflip.dev/studyhall/pkg/timeutil"
)

var (
	youStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
	inputStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true)
)

// navigateMsg delivers a deferred navigation listing to the transcript.
type navigateMsg struct {
	action string
}

type ui struct {
	assistant *chat.Assistant

	viewport viewport.Model
	input    textinput.Model

	transcript []string
	ready      bool
}

func newUI(assistant *chat.Assistant) *ui {
	in := textinput.New()
	in.Placeholder = "Ask me to add tasks, plan exams, or set up a routine..."
	in.Prompt = "> "
	in.CharLimit = 280
	in.Focus()

	return &ui{
		assistant:  assistant,
		input:      in,
		transcript: []string{assistantLine(chat.Greeting())},
	}
}

func (u *ui) Init() tea.Cmd {
	return textinput.Blink
}

func (u *ui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !u.ready {
			u.viewport = viewport.New(msg.Width, msg.Height-3)
			u.ready = true
		} else {
			u.viewport.Width = msg.Width
			u.viewport.Height = msg.Height - 3
		}
		u.input.Width = msg.Width - 4
		u.refresh()
		return u, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return u, tea.Quit
		case tea.KeyEnter:
			return u, u.submit()
		}

	case navigateMsg:
		u.append(faintStyle.Render(u.listing(msg.action)))
		return u, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	cmds = append(cmds, cmd)
	u.viewport, cmd = u.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return u, tea.Batch(cmds...)
}

func (u *ui) View() string {
	if !u.ready {
		return "loading..."
	}
	return u.viewport.View() + "\n" + inputStyle.Render(u.input.View())
}

func (u *ui) submit() tea.Cmd {
	message := strings.TrimSpace(u.input.Value())
	if message == "" {
		return nil
	}
	u.input.Reset()

	if strings.EqualFold(message, "exit") || strings.EqualFold(message, "quit") {
		return tea.Quit
	}

	u.append(youStyle.Render("you> ") + message)

	result, err := u.assistant.Interpret(message)
	if err != nil {
		u.append(assistantLine("Something went wrong: " + err.Error()))
		return nil
	}
	u.append(assistantLine(result.Response))

	if strings.HasPrefix(result.Action, "navigate_") {
		action := result.Action
		return tea.Tick(navigateDelay, func(time.Time) tea.Msg {
			return navigateMsg{action: action}
		})
	}
	return nil
}

func (u *ui) append(line string) {
	u.transcript = append(u.transcript, line)
	u.refresh()
}

func (u *ui) refresh() {
	if !u.ready {
		return
	}
	body := strings.Join(u.transcript, "\n\n")
	u.viewport.SetContent(wordwrap.String(body, u.viewport.Width))
	u.viewport.GotoBottom()
}

func assistantLine(text string) string {
	return assistantStyle.Render("assistant> ") + text
}

// listing renders a compact in-transcript view for a navigation action.
func (u *ui) listing(action string) string {
	scope := u.assistant.Scope
	var b strings.Builder

	switch action {
	case "navigate_scheduler":
		tasks := scope.Tasks()
		fmt.Fprintf(&b, "Tasks (%d)\n", len(tasks))
		for _, t := range tasks {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s  %s  %s\n", mark, timeutil.Format12(t.Time), t.Title, t.Priority)
		}
		if len(tasks) == 0 {
			b.WriteString("  nothing scheduled\n")
		}

	case "navigate_events", "navigate_calendar":
		events := scope.Events()
		fmt.Fprintf(&b, "Events (%d)\n", len(events))
		for _, e := range events {
			fmt.Fprintf(&b, "  %s %s  %s (%s)\n", e.Date, timeutil.Format12(e.Time), e.Title, e.Type)
		}
		if len(events) == 0 {
			b.WriteString("  no events\n")
		}
		if action == "navigate_calendar" {
			ds := scope.ImportantDates()
			fmt.Fprintf(&b, "Important Dates (%d)\n", len(ds))
			for _, d := range ds {
				fmt.Fprintf(&b, "  %s  %s\n", d.Date, d.Title)
			}
		}

	case "navigate_goaltimetable":
		g, ok := scope.Goal()
		if !ok {
			return "No goal yet. Try: set a goal from the goal command."
		}
		fmt.Fprintf(&b, "Short term: %s\nLong term: %s\n", g.ShortTerm, g.LongTerm)
		p := scope.Progress()
		fmt.Fprintf(&b, "Progress: %d/%d done, %d stars\n", p.CompletedTasks, p.TotalTasks, p.StarsEarned)
		fmt.Fprintf(&b, "%s\n", timetable.ProgressMessage(p.CompletedTasks, p.TotalTasks))
		for _, t := range scope.Timetable() {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s  %s (%s)\n", mark, t.Time, t.Title, t.Duration)
		}

	case "navigate_analytics":
		s := stats.Compute(scope, time.Now().Format(timeutil.LayoutISO))
		fmt.Fprintf(&b, "Tasks: %d total, %d done, %d pending\n", s.TotalTasks, s.CompletedTasks, s.PendingTasks)
		fmt.Fprintf(&b, "Completion: %d%%\n", s.CompletionRate())
		fmt.Fprintf(&b, "Upcoming events: %d\nImportant dates: %d\nStars: %d\n", s.UpcomingEvents, s.ImportantDates, s.StarsEarned)

	case "navigate_profile":
		p, ok := scope.Profile()
		if !ok {
			return "No profile yet. Fill one in with the profile command."
		}
		fmt.Fprintf(&b, "Name: %s\nCollege: %s\nCourse: %s\nYear: %s\nBirthday: %s\n", p.Name, p.College, p.Course, p.Year, p.Birthday)
	}

	return strings.TrimRight(b.String(), "\n")
}
