package command

import (
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchOptions struct {
	decompress bool
	force      bool
	suffix     string
	workers    int
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var bopts batchOptions

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Compress or decompress many files",
		Long:  "Compress each file to file+suffix, or with -d decompress each file+suffix back to file.  Every file gets its own container; files are processed concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, bopts, args)
		},
	}
	cmd.Flags().BoolVarP(&bopts.decompress, "decompress", "d", false, "Decompress instead of compress")
	cmd.Flags().BoolVarP(&bopts.force, "force", "f", false, "Overwrite outputs that exist")
	cmd.Flags().StringVarP(&bopts.suffix, "suffix", "S", ".huf", "Suffix of compressed files")
	cmd.Flags().IntVarP(&bopts.workers, "workers", "w", 0, "Number of files processed at once (0 = number of CPUs)")
	return cmd
}

func batchOutput(path string, bopts batchOptions) (string, error) {
	if !bopts.decompress {
		return path + bopts.suffix, nil
	}
	if !strings.HasSuffix(path, bopts.suffix) || len(path) == len(bopts.suffix) {
		return "", errors.Errorf("%s does not end in %q", path, bopts.suffix)
	}
	return strings.TrimSuffix(path, bopts.suffix), nil
}

func runBatch(cmd *cobra.Command, opts *rootOptions, bopts batchOptions, paths []string) error {
	if bopts.suffix == "" {
		return errors.New("suffix must not be empty")
	}
	for _, path := range paths {
		if path == stdio {
			return errors.New("batch does not read stdin")
		}
	}

	workers := bopts.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var completed int64

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			// Check if another worker already failed
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := batchOutput(path, bopts)
			if err != nil {
				return err
			}
			if bopts.decompress {
				_, err = decompressFile(cmd, path, out, bopts.force)
			} else {
				_, err = compressFile(cmd, path, out, bopts.force)
			}
			if err != nil {
				opts.log.Errorf("%s: %v", path, err)
				return err
			}
			atomic.AddInt64(&completed, 1)
			opts.log.Infof("%s -> %s", path, out)
			return nil
		})
	}
	err := g.Wait()
	opts.log.Infof("%d of %d files done", atomic.LoadInt64(&completed), len(paths))
	return err
}
