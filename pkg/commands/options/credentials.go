package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions captures login credentials.
type CredentialOptions struct {
	Email    string
	Password string
}

// AddCredentialArgs wires credential flags on the provided command.
func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
}
