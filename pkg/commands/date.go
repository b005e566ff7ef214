package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/runner/dates"
)

func addDate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Manage important dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDateAdd(cmd)
	addDateList(cmd)
	addDateRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addDateAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Mark a day as important",
		Example: `
studyhall date add results day --date 2026-11-02
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			do.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			a := dates.Add{
				Scope:       scope,
				Title:       do.Title,
				Description: do.Description,
				Date:        do.Date,
				ShowID:      io.ShowID,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addDateList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show important dates in calendar order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			l := dates.List{Scope: scope, ShowID: io.ShowID}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addDateRemove(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Unmark an important date",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 0 && do.Title == "" {
				return errors.New("requires an id or --title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			r := dates.Remove{Scope: scope, Title: do.Title, ShowID: io.ShowID}
			if len(args) > 0 {
				r.ID = args[0]
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&do.Title, "title", "",
		"Select by title substring instead of id.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
