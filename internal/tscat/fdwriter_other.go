//go:build !unix

package tscat

import (
	"errors"
	"os"
)

var errNonblockUnsupported = errors.New("non-blocking output is not supported on this platform")

// FDWriter is only usable on unix.
type FDWriter struct {
	Fd   int
	Name string
}

func (w FDWriter) Write(p []byte) (int, error) {
	return 0, &os.PathError{Op: "write", Path: w.Name, Err: errNonblockUnsupported}
}

// SetNonblock always fails.
func SetNonblock(int) error {
	return errNonblockUnsupported
}
