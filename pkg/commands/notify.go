package commands

import (
	"os"
	"os/signal"
	"syscall"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/runner/watch"
)

func addNotify(topLevel *cobra.Command) {
	verbose := false

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Run the notification daemon",
		Long: base.Wrap80("Polls the schedule every thirty seconds and sends a desktop " +
			"notification five minutes before each task and again at its start time. " +
			"Also wishes you a happy birthday, once."),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().
				Level(zerolog.WarnLevel)
			if verbose {
				log = log.Level(zerolog.InfoLevel)
			}

			s, scope, err := loadScope()
			if err != nil {
				return err
			}

			w := watch.Watch{Store: s, Scope: scope, Log: log}
			err = w.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every check, not just problems.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
