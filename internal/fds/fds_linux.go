package fds

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"golang.org/x/sys/unix"
)

// ensureProcHandle returns whether or not the given file handle is on procfs.
func ensureProcHandle(fh *os.File) error {
	var buf unix.Statfs_t
	if err := unix.Fstatfs(int(fh.Fd()), &buf); err != nil {
		return fmt.Errorf("ensure %s is on procfs: %w", fh.Name(), err)
	}
	if buf.Type != unix.PROC_SUPER_MAGIC {
		return fmt.Errorf("%s is not on procfs", fh.Name())
	}
	return nil
}

// openDescriptors lists /proc/self/fd. The directory is closed before the
// list is returned, so its own descriptor shows up as a stale entry.
func openDescriptors(minFd int) ([]int, error) {
	fdDir, err := os.Open("/proc/self/fd")
	if err != nil {
		return nil, err
	}
	names, err := readNames(fdDir)
	fdDir.Close()
	if err != nil {
		return nil, err
	}

	fds := make([]int, 0, len(names))
	for _, name := range names {
		fd, err := strconv.Atoi(name)
		// Ignore non-numeric file names.
		if err != nil || fd < minFd {
			continue
		}
		fds = append(fds, fd)
	}
	sort.Ints(fds)
	return fds, nil
}

func readNames(fdDir *os.File) ([]string, error) {
	if err := ensureProcHandle(fdDir); err != nil {
		return nil, err
	}
	return fdDir.Readdirnames(-1)
}
