//go:build unix && !linux

package fds

import (
	"golang.org/x/sys/unix"
)

// Upper bound on the descriptors probed when RLIMIT_NOFILE is unlimited.
const maxProbe = 1 << 20

// openDescriptors probes every descriptor number below the soft
// RLIMIT_NOFILE, as there is no portable way to list open descriptors.
func openDescriptors(minFd int) ([]int, error) {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		return nil, err
	}
	limit := uint64(rlim.Cur)
	if limit > maxProbe {
		limit = maxProbe
	}

	var fds []int
	for fd := minFd; uint64(fd) < limit; fd++ {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err == nil {
			fds = append(fds, fd)
		}
	}
	return fds, nil
}
