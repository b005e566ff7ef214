package options

import (
	"github.com/spf13/cobra"
)

// PathOptions overrides the storage location.
type PathOptions struct {
	Path string
}

// AddPathArgs wires the storage path flag on the provided command.
func AddPathArgs(cmd *cobra.Command, o *PathOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Storage directory. Defaults to the configured path, then ~/.studyhall.db.")
}
