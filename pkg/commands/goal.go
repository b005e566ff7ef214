package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Goals, the daily timetable, and star rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalSet(cmd)
	addGoalShow(cmd)
	addGoalRegenerate(cmd)
	addGoalToggle(cmd)
	addGoalClaim(cmd)
	addGoalReward(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalSet(topLevel *cobra.Command) {
	g := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set goals and generate a fresh daily timetable",
		Example: `
studyhall goal set --short "pass the algebra midterm" --long "graduate with honors"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			s := goal.Set{Scope: scope, ShortTerm: g.ShortTerm, LongTerm: g.LongTerm}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGoalArgs(cmd, g)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show goals, the timetable, and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			s := goal.Show{Scope: scope}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalRegenerate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Rebuild the timetable; earned stars are kept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			r := goal.Regenerate{Scope: scope}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a timetable entry between done and pending",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			t := goal.Toggle{Scope: scope, ID: args[0]}
			err = t.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalClaim(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim the one-time star for a completed entry",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			c := goal.Claim{Scope: scope, ID: args[0]}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalReward(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Award a star directly, rate limited",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, scope, err := loadScope()
			if err != nil {
				return err
			}

			r := goal.Reward{Scope: scope}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
