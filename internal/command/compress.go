package command

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffpack"
)

func newCompressCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "compress [input] [output]",
		Short: "Compress a file",
		Long:  "Compress input into a huffpack container at output.  Either path may be - for stdin or stdout.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			n, err := compressFile(cmd, in, out, force)
			if err != nil {
				return err
			}
			opts.log.Infof("compressed %s into %s (%d bytes)", in, out, n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite output if it exists")
	return cmd
}

func compressFile(cmd *cobra.Command, in, out string, force bool) (int64, error) {
	data, err := readInput(cmd, in)
	if err != nil {
		return 0, err
	}

	var e huffpack.Encoder
	e.Init(huffpack.NewFrequencyTable(data))

	var n int64
	err = writeOutput(cmd, out, force, func(w io.Writer) error {
		var err error
		n, err = e.Encode(w, data)
		return errors.Wrapf(err, "write %s", out)
	})
	return n, err
}
