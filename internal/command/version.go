package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffpack"
)

// Version is the huffpack release.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "View huffpack's version",
		Long:  "Display the version of huffpack and the container format it writes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "huffpack version %s (container format %d)\n", Version, huffpack.Version)
			return err
		},
	}
}
