package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/runner/account"
	"tableflip.dev/studyhall/pkg/session"
)

func addAccounts(topLevel *cobra.Command) {
	addSignup(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
}

func loadManager() (*session.Manager, error) {
	s, err := loadStore()
	if err != nil {
		return nil, err
	}
	return &session.Manager{Backend: s}, nil
}

func addSignup(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Example: `
studyhall signup --email me@campus.edu --password hunter2
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, err := loadManager()
			if err != nil {
				return err
			}

			s := account.Signup{Manager: m, Email: co.Email, Password: co.Password}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore()
			if err != nil {
				return err
			}
			m := &session.Manager{Backend: s}

			l := account.Login{Manager: m, Store: s, Email: co.Email, Password: co.Password}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out; your data stays for the next login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, err := loadManager()
			if err != nil {
				return err
			}

			l := account.Logout{Manager: m}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, err := loadManager()
			if err != nil {
				return err
			}

			w := account.Whoami{Manager: m}
			err = w.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
