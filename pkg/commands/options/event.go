package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures the fields of a college event.
type EventOptions struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Type        string

	Upcoming bool
}

// AddEventArgs wires event creation flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "D", "",
		"Event date, yyyy-mm-dd.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Start time, 24 hour HH:MM.")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Where the event happens.")
	cmd.Flags().StringVar(&o.Type, "type", "academic",
		"Event type. One of academic, cultural, sports or other.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional description.")
}

// AddEventFilterArgs wires listing filters on the provided command.
func AddEventFilterArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Only show events of this type.")
	cmd.Flags().BoolVar(&o.Upcoming, "upcoming", false,
		"Only show events from today on.")
}
