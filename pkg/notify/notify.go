// Package notify polls the task collection and fires one-shot
// notifications at the five-minute warning and at start time. Matching is
// minute-granularity string equality against the poll clock; a check missed
// across the exact minute skips that notification.
package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Period is the poll interval. One extra check runs immediately on start.
const Period = 30 * time.Second

// Notifier delivers a system-level notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends OS notifications. Delivery failure is not fatal; the in-app
// line still prints.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Scheduler watches one identity's tasks. Notifier and Now default to the
// desktop notifier and the wall clock.
type Scheduler struct {
	Scope    *store.Scope
	Notifier Notifier
	Log      zerolog.Logger
	Now      func() time.Time
	Out      io.Writer
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scheduler) send(title, body string) {
	if s.Notifier != nil {
		if err := s.Notifier.Notify(title, body); err != nil {
			s.Log.Warn().Err(err).Str("title", title).Msg("system notification failed")
		}
	}
	if s.Out != nil {
		color.New(color.FgYellow, color.Bold).Fprintf(s.Out, "%s\n", title)
		fmt.Fprintf(s.Out, "  %s\n", body)
	}
	s.Log.Info().Str("title", title).Msg("notification fired")
}

// Run polls until ctx is cancelled. A non-nil events channel triggers an
// extra check whenever the store changes underneath the poll.
func (s *Scheduler) Run(ctx context.Context, events <-chan store.Event) error {
	s.CheckOnce()
	s.CheckBirthday()

	ticker := time.NewTicker(Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.CheckOnce()
			s.CheckBirthday()
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			s.CheckOnce()
		}
	}
}

// CheckOnce runs a single poll. Each flag transitions false to true at most
// once per task; completed tasks never notify.
func (s *Scheduler) CheckOnce() {
	now := s.now()
	current := timeutil.Clock(now)
	warning := timeutil.Clock(now.Add(5 * time.Minute))

	tasks := s.Scope.Tasks()
	changed := false
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			continue
		}

		if t.Time == warning && !t.NotifiedBefore {
			s.send(
				fmt.Sprintf("Starting Soon: %s", t.Title),
				fmt.Sprintf("Your task %q will start in 5 minutes!", t.Title),
			)
			t.NotifiedBefore = true
			changed = true
		}

		if t.Time == current && !t.Notified {
			body := t.Description
			if body == "" {
				body = t.Title
			}
			s.send(
				fmt.Sprintf("Time to Start: %s", t.Title),
				fmt.Sprintf("It's time for: %s", body),
			)
			t.Notified = true
			changed = true
		}
	}

	if changed {
		if err := s.Scope.SaveTasks(tasks); err != nil {
			s.Log.Error().Err(err).Msg("saving notification flags")
		}
	}
}

// CheckBirthday wishes the user at most once per calendar day when today
// matches the profile birthday's month and day.
func (s *Scheduler) CheckBirthday() {
	profile, ok := s.Scope.Profile()
	if !ok || profile.Birthday == "" {
		return
	}
	birthday, err := time.Parse(timeutil.LayoutISO, profile.Birthday)
	if err != nil {
		return
	}

	now := s.now()
	if now.Day() != birthday.Day() || now.Month() != birthday.Month() {
		return
	}

	stamp := now.Format(timeutil.LayoutISO)
	if s.Scope.LastBirthdayWish() == stamp {
		return
	}

	name := profile.Name
	if name == "" {
		name = "there"
	}
	s.send(
		fmt.Sprintf("Happy Birthday, %s!", name),
		"Wishing you an amazing year ahead filled with success and happiness!",
	)
	if err := s.Scope.SetLastBirthdayWish(stamp); err != nil {
		s.Log.Error().Err(err).Msg("saving birthday stamp")
	}
}
