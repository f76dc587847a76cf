package command

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// stdio is the path meaning stdin or stdout.
const stdio = "-"

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}

// writeOutput creates path and hands a buffered writer to fn.  Without force
// an existing path is an error.  With force the output goes to a temporary
// file in the same directory that replaces path only once fully written, so a
// failure leaves any existing path untouched.
func writeOutput(cmd *cobra.Command, path string, force bool, fn func(w io.Writer) error) error {
	if path == stdio {
		bw := bufio.NewWriter(cmd.OutOrStdout())
		if err := fn(bw); err != nil {
			return err
		}
		return errors.Wrap(bw.Flush(), "write stdout")
	}

	var f *os.File
	var err error
	if force {
		f, err = os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
		if err == nil {
			err = f.Chmod(0o644)
		}
	} else {
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		if f != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
		return errors.Wrapf(err, "create %s", path)
	}

	bw := bufio.NewWriter(f)
	err = fn(bw)
	if err == nil {
		err = errors.Wrapf(bw.Flush(), "write %s", path)
	}
	if closeErr := f.Close(); err == nil {
		err = errors.Wrapf(closeErr, "close %s", path)
	}
	if err == nil && force {
		err = errors.Wrapf(os.Rename(f.Name(), path), "replace %s", path)
	}
	if err != nil {
		_ = os.Remove(f.Name())
	}
	return err
}
