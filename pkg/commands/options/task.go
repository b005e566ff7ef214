package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the fields of a scheduled task.
type TaskOptions struct {
	Title       string
	Description string
	Time        string
	Priority    string
}

// AddTaskArgs wires task creation flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Start time, 24 hour HH:MM.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority. One of high, medium or low.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional description.")
}

// AddTaskSelectorArgs wires flags that pick an existing task.
func AddTaskSelectorArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Select by title substring instead of id.")
}
