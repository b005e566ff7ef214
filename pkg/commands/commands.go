package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/studyhall/pkg/commands/options"
	"tableflip.dev/studyhall/pkg/session"
	"tableflip.dev/studyhall/pkg/store"
)

var (
	output = &base.OutputOptions{}
	po     = &options.PathOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyhall",
		Short: base.Wrap80("A student planner on the command line: tasks, events, goals and a chatty assistant."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddPathArgs(cmd, po)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addChat(topLevel)
	addTask(topLevel)
	addEvent(topLevel)
	addDate(topLevel)
	addProfile(topLevel)
	addGoal(topLevel)
	addNotify(topLevel)
	addStats(topLevel)
	addAccounts(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadScope opens the store and resolves the active identity's scope.
// Logged out sessions use the bare, un-suffixed keys.
func loadScope() (*store.Store, *store.Scope, error) {
	s, err := loadStore()
	if err != nil {
		return nil, nil, err
	}
	m := &session.Manager{Backend: s}
	return s, s.Scope(m.Current()), nil
}

func loadStore() (*store.Store, error) {
	if po.Path != "" {
		return store.Open(store.PathConfig(po.Path))
	}
	return store.Open(nil)
}
