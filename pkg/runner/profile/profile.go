package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyhall/pkg/printers"
	"tableflip.dev/studyhall/pkg/store"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// Set updates the profile. Empty fields keep their stored value so the
// profile can be edited one flag at a time.
type Set struct {
	Scope *store.Scope

	Name     string
	Email    string
	Birthday string
	College  string
	Course   string
	Year     string
}

func (s *Set) Do(ctx context.Context) error {
	if s.Birthday != "" {
		if _, err := time.Parse(timeutil.LayoutISO, s.Birthday); err != nil {
			return fmt.Errorf("invalid birthday %q, want yyyy-mm-dd", s.Birthday)
		}
	}

	p, _ := s.Scope.Profile()
	if s.Name != "" {
		p.Name = s.Name
	}
	if s.Email != "" {
		p.Email = s.Email
	}
	if s.Birthday != "" {
		p.Birthday = s.Birthday
	}
	if s.College != "" {
		p.College = s.College
	}
	if s.Course != "" {
		p.Course = s.Course
	}
	if s.Year != "" {
		p.Year = s.Year
	}
	if p.Name == "" || p.Birthday == "" {
		return errors.New("a profile needs at least --name and --birthday")
	}
	if err := s.Scope.SaveProfile(p); err != nil {
		return err
	}

	get := Get{Scope: s.Scope}
	return get.Do(ctx)
}

// Get prints the profile.
type Get struct {
	Scope *store.Scope
}

func (g *Get) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Profile")
	p, ok := g.Scope.Profile()
	if !ok {
		pp.NewLine()
		fmt.Println("No profile yet. Set one with: studyhall profile set --name=...")
		return nil
	}
	pp.Profile(p)
	return nil
}
