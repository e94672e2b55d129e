//go:build unix

package tscat

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// FDWriter writes straight to a descriptor, bypassing the runtime poller,
// so a non-blocking descriptor reports EAGAIN instead of parking the
// goroutine.
type FDWriter struct {
	Fd   int
	Name string
}

// retryOnEINTR takes a function that returns an error and calls it
// until the error returned is not EINTR.
func retryOnEINTR(fn func() error) error {
	for {
		err := fn()
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func (w FDWriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		var n int
		err := retryOnEINTR(func() error {
			var err error
			n, err = unix.Write(w.Fd, p[written:])
			return err
		})
		if err != nil {
			return written, &os.PathError{Op: "write", Path: w.Name, Err: err}
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
		written += n
	}
	return written, nil
}

// SetNonblock puts fd in non-blocking mode.
func SetNonblock(fd int) error {
	if err := unix.SetNonblock(fd, true); err != nil {
		return os.NewSyscallError("fcntl", err)
	}
	return nil
}
