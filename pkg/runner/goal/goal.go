package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timetable"
)

// Set stores the goal pair and generates a fresh timetable.
type Set struct {
	Scope *store.Scope

	ShortTerm string
	LongTerm  string
}

func (s *Set) Do(ctx context.Context) error {
	if s.ShortTerm == "" || s.LongTerm == "" {
		return errors.New("requires both --short and --long goals")
	}
	svc := timetable.Service{Scope: s.Scope}
	if err := svc.SetGoal(s.ShortTerm, s.LongTerm); err != nil {
		return err
	}

	show := Show{Scope: s.Scope}
	return show.Do(ctx)
}

// Regenerate replaces the timetable, keeping earned stars.
type Regenerate struct {
	Scope *store.Scope
}

func (r *Regenerate) Do(ctx context.Context) error {
	if _, ok := r.Scope.Goal(); !ok {
		return errors.New("no goal set, run: studyhall goal set")
	}
	svc := timetable.Service{Scope: r.Scope}
	if err := svc.Regenerate(); err != nil {
		return err
	}

	show := Show{Scope: r.Scope}
	return show.Do(ctx)
}

// Show prints the goal, the timetable, and progress.
type Show struct {
	Scope *store.Scope
}

func (s *Show) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}

	g, ok := s.Scope.Goal()
	if !ok {
		pp.Title("Goals")
		pp.NewLine()
		fmt.Println("No goal yet. Set one with: studyhall goal set --short=... --long=...")
		return nil
	}

	pp.Title("Goals")
	pp.Goal(g)
	pp.NewLine()

	pp.Title("Timetable")
	pp.Timetable(s.Scope.Timetable()...)

	p := s.Scope.Progress()
	pp.Progress(p,
		timetable.MilestoneMessage(p.StarsEarned),
		timetable.ProgressMessage(p.CompletedTasks, p.TotalTasks))
	return nil
}

// Toggle flips completion for one timetable entry.
type Toggle struct {
	Scope *store.Scope

	ID string
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.ID == "" {
		return errors.New("requires an entry id")
	}
	svc := timetable.Service{Scope: t.Scope}
	entry, err := svc.ToggleComplete(t.ID)
	if err != nil {
		return err
	}
	if entry.Completed {
		fmt.Printf("%q marked complete. Claim its star with: studyhall goal claim %s\n", entry.Title, entry.ID)
	} else {
		fmt.Printf("%q marked incomplete.\n", entry.Title)
	}

	show := Show{Scope: t.Scope}
	return show.Do(ctx)
}

// Claim awards the one-time star for a completed entry.
type Claim struct {
	Scope *store.Scope

	ID string
}

func (c *Claim) Do(ctx context.Context) error {
	if c.ID == "" {
		return errors.New("requires an entry id")
	}
	svc := timetable.Service{Scope: c.Scope}
	claimed, progress, err := svc.ClaimStar(c.ID)
	if err != nil {
		return err
	}
	if claimed {
		star := color.New(color.FgYellow, color.Bold)
		_, _ = star.Printf("Star earned! Total: %d\n", progress.StarsEarned)
		fmt.Println(timetable.MilestoneMessage(progress.StarsEarned))
	} else {
		fmt.Println("Nothing to claim; the entry is either unfinished or already claimed.")
	}

	show := Show{Scope: c.Scope}
	return show.Do(ctx)
}

// Reward is the ungated star trigger, debounced to one star per two
// seconds.
type Reward struct {
	Scope *store.Scope
}

func (r *Reward) Do(_ context.Context) error {
	svc := timetable.Service{Scope: r.Scope}
	awarded, progress, err := svc.Reward()
	if err != nil {
		return err
	}
	if !awarded {
		fmt.Println("Easy there! Stars come at most one every couple of seconds.")
		return nil
	}
	star := color.New(color.FgYellow, color.Bold)
	_, _ = star.Printf("Star earned! Total: %d\n", progress.StarsEarned)
	fmt.Println(timetable.MilestoneMessage(progress.StarsEarned))
	return nil
}
