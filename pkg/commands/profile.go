package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your student profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProfileSet(cmd)
	addProfileShow(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	o := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields; omitted flags keep their value",
		Example: `
studyhall profile set --name "Priya" --birthday 2006-04-18
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			s := profile.Set{
				Scope:    scope,
				Name:     o.Name,
				Email:    o.Email,
				Birthday: o.Birthday,
				College:  o.College,
				Course:   o.Course,
				Year:     o.Year,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, o)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addProfileShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get"},
		Short:   "Show the profile, age, and next birthday",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			g := profile.Get{Scope: scope}
			err = g.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
