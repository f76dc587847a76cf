package command

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var quiet, verify bool

	cmd := &cobra.Command{
		Use:   "inspect [container]",
		Short: "Describe a huffpack container",
		Long:  "Print the header of a huffpack container and, unless --quiet, its code table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			container, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			hdr, err := huffpack.ReadHeader(bytes.NewReader(container))
			if err != nil {
				return errors.Wrapf(err, "inspect %s", path)
			}
			if verify {
				if _, err := huffpack.Decompress(container); err != nil {
					return errors.Wrapf(err, "verify %s", path)
				}
				opts.log.Infof("%s verified", path)
			}

			p := message.NewPrinter(language.English) // For commas between thousands
			w := cmd.OutOrStdout()
			p.Fprintf(w, "container:  %d bytes\n", len(container))
			p.Fprintf(w, "original:   %d bytes\n", hdr.Length)
			p.Fprintf(w, "symbols:    %d\n", hdr.Tree.Len())
			if !hdr.Tree.Empty() {
				minSize, maxSize := hdr.Tree.CodeSizes()
				p.Fprintf(w, "code sizes: %d .. %d bits\n", minSize, maxSize)
			}
			if hdr.Length != 0 {
				p.Fprintf(w, "ratio:      %.2f%%\n", 100*float64(len(container))/float64(hdr.Length))
			}
			if quiet || hdr.Tree.Empty() {
				return nil
			}

			cb, err := huffpack.NewCodeBook(hdr.Tree)
			if errors.Is(err, huffpack.ErrCodeTooLong) {
				p.Fprintf(w, "code table: omitted, codes exceed %d bits\n", huffpack.MaxCodeSize)
				return nil
			}
			if err != nil {
				return err
			}
			_, err = cb.Dump(w)
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Omit the code table")
	cmd.Flags().BoolVar(&verify, "verify", false, "Decode the whole container to check it")
	return cmd
}
