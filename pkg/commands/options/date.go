package options

import (
	"github.com/spf13/cobra"
)

// DateOptions captures the fields of an important date.
type DateOptions struct {
	Title       string
	Description string
	Date        string
}

// AddDateArgs wires important date flags on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "D", "",
		"Calendar day, yyyy-mm-dd.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional description.")
}
