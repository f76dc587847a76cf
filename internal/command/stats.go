package command

import (
	"bytes"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
)

// entropyBits returns the Shannon bound, in bits, for coding each symbol of
// the input independently.
func entropyBits(ft *huffpack.FrequencyTable) float64 {
	total := float64(ft.Total())
	var bits float64
	for _, symbol := range ft.Symbols() {
		count := float64(ft.Count(symbol))
		bits -= count * math.Log2(count/total)
	}
	return bits
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [input]",
		Short: "Compare Huffman coding of a file against zstd",
		Long:  "Compress input in memory and report the container size, the order-0 entropy bound and the size zstd achieves on the same data.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			ft := huffpack.NewFrequencyTable(data)
			var e huffpack.Encoder
			e.Init(ft)
			var container bytes.Buffer
			if _, err := e.Encode(&container, data); err != nil {
				return err
			}

			enc, err := zstd.NewWriter(nil)
			if err != nil {
				return errors.Wrap(err, "zstd")
			}
			zstdSize := len(enc.EncodeAll(data, nil))
			if err := enc.Close(); err != nil {
				return errors.Wrap(err, "zstd")
			}
			opts.log.Infof("%s: %d distinct symbols", args[0], ft.Len())

			p := message.NewPrinter(language.English) // For commas between thousands
			w := cmd.OutOrStdout()
			p.Fprintf(w, "original:      %d bytes\n", len(data))
			p.Fprintf(w, "huffpack:      %d bytes\n", container.Len())
			p.Fprintf(w, "code stream:   %d bits\n", e.CodeBook().EncodedBits(ft))
			p.Fprintf(w, "entropy bound: %.0f bits\n", math.Ceil(entropyBits(ft)))
			p.Fprintf(w, "zstd:          %d bytes\n", zstdSize)
			return nil
		},
	}
}
