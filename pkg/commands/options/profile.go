package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions captures the editable profile fields. Flags left empty
// keep their stored value.
type ProfileOptions struct {
	Name     string
	Email    string
	Birthday string
	College  string
	Course   string
	Year     string
}

// AddProfileArgs wires profile flags on the provided command.
func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Your name.")
	cmd.Flags().StringVar(&o.Email, "email", "", "Contact email.")
	cmd.Flags().StringVar(&o.Birthday, "birthday", "",
		"Birthday, yyyy-mm-dd. Used for the annual birthday wish.")
	cmd.Flags().StringVar(&o.College, "college", "", "College name.")
	cmd.Flags().StringVar(&o.Course, "course", "", "Course of study.")
	cmd.Flags().StringVar(&o.Year, "year", "", "Year of study.")
}
