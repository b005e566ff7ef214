package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/studyhall/pkg/notify"
	"tableflip.dev/studyhall/pkg/session"
	"tableflip.dev/studyhall/pkg/store"
)

// Signup registers a new identity and logs it in.
type Signup struct {
	Manager *session.Manager

	Email    string
	Password string
}

func (s *Signup) Do(_ context.Context) error {
	if s.Email == "" {
		return errors.New("requires an email")
	}
	if err := s.Manager.Signup(s.Email, s.Password); err != nil {
		return err
	}
	welcome := color.New(color.FgGreen, color.Bold)
	_, _ = welcome.Printf("Welcome, %s!\n", s.Email)
	fmt.Println("Your data is now namespaced to this account.")
	return nil
}

// Login activates an existing identity. When the store is provided, the
// birthday check runs for the fresh session so a wish is not deferred to
// the next daemon start.
type Login struct {
	Manager *session.Manager
	Store   *store.Store

	Email    string
	Password string
}

func (l *Login) Do(_ context.Context) error {
	if err := l.Manager.Login(l.Email, l.Password); err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Printf("Logged in as %s\n", l.Email)

	if l.Store != nil {
		sched := notify.Scheduler{
			Scope:    l.Store.Scope(l.Manager.Current()),
			Notifier: notify.Desktop{},
			Log:      zerolog.Nop(),
			Out:      color.Output,
		}
		sched.CheckBirthday()
	}
	return nil
}

// Logout clears the active identity. Stored data is kept for the next
// login.
type Logout struct {
	Manager *session.Manager
}

func (l *Logout) Do(_ context.Context) error {
	current := l.Manager.Current()
	if current == "" {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := l.Manager.Logout(); err != nil {
		return err
	}
	fmt.Printf("Logged out %s. Data is kept for the next login.\n", current)
	return nil
}

// Whoami prints the active identity.
type Whoami struct {
	Manager *session.Manager
}

func (w *Whoami) Do(_ context.Context) error {
	current := w.Manager.Current()
	if current == "" {
		fmt.Println("Not logged in. Data lives in the shared default namespace.")
		return nil
	}
	fmt.Println(current)
	return nil
}
