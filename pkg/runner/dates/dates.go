package dates

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

// Add marks a calendar day as important.
type Add struct {
	Scope *store.Scope

	Title       string
	Description string
	Date        string

	ShowID bool
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("requires a title")
	}
	if _, err := time.Parse(timeutil.LayoutISO, a.Date); err != nil {
		return fmt.Errorf("invalid date %q, want yyyy-mm-dd", a.Date)
	}

	if err := a.Scope.AddImportantDate(model.ImportantDate{
		ID:          uuid.NewString(),
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
	}); err != nil {
		return err
	}

	list := List{Scope: a.Scope, ShowID: a.ShowID}
	return list.Do(ctx)
}

// List prints important dates in calendar order.
type List struct {
	Scope *store.Scope

	ShowID bool
}

func (l *List) Do(_ context.Context) error {
	dates := l.Scope.ImportantDates()
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].Date < dates[j].Date })

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("Important dates", len(dates))
	pp.Dates(dates...)
	return nil
}

// Remove deletes an important date by id or title substring.
type Remove struct {
	Scope *store.Scope

	ID     string
	Title  string
	ShowID bool
}

func (r *Remove) Do(ctx context.Context) error {
	id := r.ID
	if id == "" {
		needle := strings.ToLower(r.Title)
		if needle == "" {
			return errors.New("requires an id or a title")
		}
		for _, d := range r.Scope.ImportantDates() {
			if strings.Contains(strings.ToLower(d.Title), needle) {
				id = d.ID
				break
			}
		}
		if id == "" {
			return fmt.Errorf("no date matching %q", r.Title)
		}
	}
	if _, err := r.Scope.RemoveImportantDate(id); err != nil {
		return err
	}

	list := List{Scope: r.Scope, ShowID: r.ShowID}
	return list.Do(ctx)
}
