package command

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffpack"
)

func newDecompressCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "decompress [input] [output]",
		Short: "Decompress a file",
		Long:  "Decompress the huffpack container at input into output.  Either path may be - for stdin or stdout.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			n, err := decompressFile(cmd, in, out, force)
			if err != nil {
				return err
			}
			opts.log.Infof("decompressed %s into %s (%d bytes)", in, out, n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite output if it exists")
	return cmd
}

func decompressFile(cmd *cobra.Command, in, out string, force bool) (int, error) {
	container, err := readInput(cmd, in)
	if err != nil {
		return 0, err
	}

	// Decode fully before creating output so a corrupt container leaves
	// nothing behind.
	data, err := huffpack.Decompress(container)
	if err != nil {
		return 0, errors.Wrapf(err, "decompress %s", in)
	}

	err = writeOutput(cmd, out, force, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return errors.Wrapf(err, "write %s", out)
	})
	return len(data), err
}
