package options

import (
	"github.com/spf13/cobra"
)

// GoalOptions captures the short and long term goal pair.
type GoalOptions struct {
	ShortTerm string
	LongTerm  string
}

// AddGoalArgs wires goal flags on the provided command.
func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.ShortTerm, "short", "s", "",
		"Short term goal.")
	cmd.Flags().StringVarP(&o.LongTerm, "long", "l", "",
		"Long term goal.")
}
