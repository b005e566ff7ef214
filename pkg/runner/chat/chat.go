package chat

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/studyhall/pkg/chat"
	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/runner/dates"
	"tableflip.dev/studyhall/pkg/runner/event"
	"tableflip.dev/studyhall/pkg/runner/goal"
	"tableflip.dev/studyhall/pkg/runner/profile"
	"tableflip.dev/studyhall/pkg/runner/stats"
	"tableflip.dev/studyhall/pkg/runner/task"
	"tableflip.dev/studyhall/pkg/store"
)

// navigateDelay lets the confirmation land before the listing follows.
const navigateDelay = time.Second

// Chat interprets one message, a piped stream of messages, or runs the
// interactive session, in that order of preference.
type Chat struct {
	Scope   *store.Scope
	Message string
}

func (c *Chat) Do(ctx context.Context) error {
	assistant := &chat.Assistant{Scope: c.Scope}
	pp := printers.PrettyPrint{}

	if strings.TrimSpace(c.Message) != "" {
		return c.one(ctx, assistant, &pp, c.Message)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := c.one(ctx, assistant, &pp, line); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	ui := newUI(assistant)
	_, err := tea.NewProgram(ui).Run()
	return err
}

func (c *Chat) one(ctx context.Context, assistant *chat.Assistant, pp *printers.PrettyPrint, message string) error {
	result, err := assistant.Interpret(message)
	if err != nil {
		return err
	}
	pp.Response(result.Response)
	return c.perform(ctx, result.Action)
}

// perform consumes an action tag. Only navigation tags need a follow-up
// here; mutation tags already printed their confirmation.
func (c *Chat) perform(ctx context.Context, action string) error {
	if !strings.HasPrefix(action, "navigate_") {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(navigateDelay):
	}

	switch action {
	case "navigate_scheduler":
		list := task.List{Scope: c.Scope}
		return list.Do(ctx)
	case "navigate_events":
		list := event.List{Scope: c.Scope}
		return list.Do(ctx)
	case "navigate_calendar":
		events := event.List{Scope: c.Scope}
		if err := events.Do(ctx); err != nil {
			return err
		}
		list := dates.List{Scope: c.Scope}
		return list.Do(ctx)
	case "navigate_goaltimetable":
		show := goal.Show{Scope: c.Scope}
		return show.Do(ctx)
	case "navigate_analytics":
		st := stats.Stats{Scope: c.Scope}
		return st.Do(ctx)
	case "navigate_profile":
		get := profile.Get{Scope: c.Scope}
		return get.Do(ctx)
	}
	return nil
}
