//go:build unix

// Package fds closes inherited file descriptors.
package fds

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CloseFrom closes every open descriptor numbered minFd or higher, except
// the ones owned by the Go runtime poller, and returns the descriptors it
// closed in ascending order.
func CloseFrom(minFd int) ([]int, error) {
	candidates, err := openDescriptors(minFd)
	if err != nil {
		return nil, err
	}
	var closed []int
	for _, fd := range candidates {
		if isPollDescriptor(uintptr(fd)) {
			continue
		}
		if err := unix.Close(fd); err != nil {
			// Already gone, like the descriptor used to list the directory.
			if errors.Is(err, unix.EBADF) {
				continue
			}
			return closed, fmt.Errorf("fd %d: %w", fd, os.NewSyscallError("close", err))
		}
		closed = append(closed, fd)
	}
	return closed, nil
}
