package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/runner/event"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage college events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventList(cmd)
	addEventRemove(cmd)
	addEventClear(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a college event",
		Example: `
studyhall event add tech fest --date 2026-09-12 --time 10:00 --type cultural
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			a := event.Add{
				Scope:       scope,
				Title:       eo.Title,
				Description: eo.Description,
				Date:        eo.Date,
				Time:        eo.Time,
				Location:    eo.Location,
				Type:        eo.Type,
				ShowID:      io.ShowID,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addEventList(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show events in date order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			l := event.List{
				Scope:    scope,
				Type:     eo.Type,
				Upcoming: eo.Upcoming,
				ShowID:   io.ShowID,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventFilterArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Delete an event",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 0 && eo.Title == "" {
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

			r := event.Remove{Scope: scope, Title: eo.Title, ShowID: io.ShowID}
			if len(args) > 0 {
				r.ID = args[0]
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&eo.Title, "title", "",
		"Select by title substring instead of id.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addEventClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			c := event.Clear{Scope: scope}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
