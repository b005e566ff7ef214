package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	message := ""

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant",
		Long: base.Wrap80("Interprets plain English: add tasks and events, mark important " +
			"dates, plan exam preparation, build study routines, or ask for advice. " +
			"With no message and a terminal, opens an interactive session; with piped " +
			"input, interprets each line."),
		Example: `
studyhall chat Add homework at 5 PM
studyhall chat Tomorrow I have a math exam at 9:30 AM
studyhall chat
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			c := chat.Chat{Scope: scope, Message: message}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
