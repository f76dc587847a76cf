// Package command implements the huffpack command line.
package command

import (
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffpack/internal/logger"
)

type rootOptions struct {
	verbose bool
	log     logger.Logger
}

// NewRootCmd returns the huffpack command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "huffpack",
		Short:         "Huffman file compressor",
		Long:          "huffpack compresses files losslessly with a static Huffman code stored alongside the data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.New(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newCompressCmd(opts))
	rootCmd.AddCommand(newDecompressCmd(opts))
	rootCmd.AddCommand(newBatchCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the huffpack command and logs any error it returns.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		logger.New(rootCmd.ErrOrStderr(), false).Errorf("%v", err)
	}
	return err
}
