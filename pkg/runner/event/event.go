package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Add creates a college event.
type Add struct {
	Scope *store.Scope

	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Type        string

	ShowID bool
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("requires a title")
	}
	if _, err := time.Parse(timeutil.LayoutISO, a.Date); err != nil {
		return fmt.Errorf("invalid date %q, want yyyy-mm-dd", a.Date)
	}
	if _, _, err := timeutil.ParseClock(a.Time); err != nil {
		return fmt.Errorf("invalid time %q, want HH:MM", a.Time)
	}

	kind := model.EventType(a.Type)
	if a.Type == "" {
		kind = model.EventAcademic
	}
	if !kind.Valid() {
		return fmt.Errorf("invalid type %q, want academic, cultural, sports or other", a.Type)
	}

	location := a.Location
	if location == "" {
		location = "To be confirmed"
	}

	if err := a.Scope.AddEvent(model.CollegeEvent{
		ID:          uuid.NewString(),
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		Time:        a.Time,
		Location:    location,
		Type:        kind,
	}); err != nil {
		return err
	}

	list := List{Scope: a.Scope, ShowID: a.ShowID}
	return list.Do(ctx)
}

// List prints events in date order, optionally filtered by type or
// restricted to upcoming dates.
type List struct {
	Scope *store.Scope

	Type     string
	Upcoming bool
	Today    string // ISO date for the upcoming cutoff; empty means today

	ShowID bool
}

func (l *List) Do(_ context.Context) error {
	events := l.Scope.Events()

	if l.Type != "" {
		kept := events[:0]
		for _, e := range events {
			if string(e.Type) == l.Type {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	if l.Upcoming {
		cutoff := l.Today
		if cutoff == "" {
			cutoff = time.Now().Format(timeutil.LayoutISO)
		}
		kept := events[:0]
		for _, e := range events {
			if e.Date >= cutoff {
				kept = append(kept, e)
			}
		}
		events = kept
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("Events", len(events))
	pp.Events(events...)
	return nil
}

// Remove deletes an event by id or title substring.
type Remove struct {
	Scope *store.Scope

	ID     string
	Title  string
	ShowID bool
}

func (r *Remove) Do(ctx context.Context) error {
	events := r.Scope.Events()
	id := r.ID
	if id == "" {
		needle := strings.ToLower(r.Title)
		if needle == "" {
			return errors.New("requires an id or a title")
		}
		for _, e := range events {
			if strings.Contains(strings.ToLower(e.Title), needle) {
				id = e.ID
				break
			}
		}
		if id == "" {
			return fmt.Errorf("no event matching %q", r.Title)
		}
	}
	if _, err := r.Scope.RemoveEvent(id); err != nil {
		return err
	}

	list := List{Scope: r.Scope, ShowID: r.ShowID}
	return list.Do(ctx)
}

// Clear wipes all events.
type Clear struct {
	Scope *store.Scope
}

func (c *Clear) Do(_ context.Context) error {
	if err := c.Scope.ClearEvents(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Events cleared")
	return nil
}
