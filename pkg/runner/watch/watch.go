package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/studyhall/pkg/notify"
	"tableflip.dev/studyhall/pkg/store"
)

// Watch runs the notification daemon until its context is cancelled. The
// store is watched so edits from other studyhall invocations trigger an
// immediate re-check between polls.
type Watch struct {
	Store *store.Store
	Scope *store.Scope
	Log   zerolog.Logger
}

func (w *Watch) Do(ctx context.Context) error {
	events, err := w.Store.Watch(ctx)
	if err != nil {
		w.Log.Warn().Err(err).Msg("file watch unavailable, polling only")
		events = nil
	}

	fmt.Fprintln(color.Output, "Watching for task notifications. Ctrl-C to stop.")

	sched := notify.Scheduler{
		Scope:    w.Scope,
		Notifier: notify.Desktop{},
		Log:      w.Log,
		Out:      color.Output,
	}
	if err := sched.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
