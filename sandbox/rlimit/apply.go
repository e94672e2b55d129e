//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rlimit

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Spare threads parked on top of GOMAXPROCS before RLIMIT_NPROC drops:
// sysmon, the template thread and threads blocked in syscalls.
const spareThreads = 4

func (r Resource) unix() int {
	switch r {
	case MaxProcesses:
		return rlimitNproc
	case MaxOpenFiles:
		return unix.RLIMIT_NOFILE
	case MaxFileSize:
		return unix.RLIMIT_FSIZE
	}
	return -1
}

// The field type of unix.Rlimit differs between systems.
type rlimValue interface{ ~int64 | ~uint64 }

func get[T rlimValue](v T) uint64 {
	if v < 0 {
		return math.MaxUint64
	}
	return uint64(v)
}

// set stores v, clamped to MaxInt64 when T is signed.
func set[T rlimValue](dst *T, v uint64) {
	if v > math.MaxInt64 && T(v) < 0 {
		v = math.MaxInt64
	}
	*dst = T(v)
}

// Apply lowers every limit in l. The soft limit never rises either.
func (l Limits) Apply() error {
	for _, lim := range l {
		res := lim.Resource.unix()
		if res < 0 {
			return fmt.Errorf("setrlimit %s: unsupported resource", lim.Resource)
		}
		var cur unix.Rlimit
		if err := unix.Getrlimit(res, &cur); err != nil {
			return fmt.Errorf("%s: %w", lim.Resource, os.NewSyscallError("getrlimit", err))
		}
		if hard := get(cur.Max); lim.Ceiling > hard {
			return fmt.Errorf("%s: %w: %d > %d", lim.Resource, ErrRaise, lim.Ceiling, hard)
		}
		set(&cur.Cur, min(get(cur.Cur), lim.Ceiling))
		set(&cur.Max, lim.Ceiling)
		if err := unix.Setrlimit(res, &cur); err != nil {
			return fmt.Errorf("%s: %w", lim.Resource, os.NewSyscallError("setrlimit", err))
		}
		logrus.Debugf("rlimit: %s lowered to %d", lim.Resource, lim.Ceiling)
	}
	return nil
}

// Init applies InitLimits. RLIMIT_NPROC also stops the Go runtime from
// creating threads for unprivileged users, so a reserve of threads is parked
// first.
func Init() error {
	regular, err := StdoutIsRegular()
	if err != nil {
		return err
	}
	reserveThreads(spareThreads)
	return InitLimits(regular).Apply()
}

// Lockdown applies LockdownLimits.
func Lockdown() error {
	return LockdownLimits().Apply()
}

// StdoutIsRegular reports whether descriptor 1 is a regular file.
func StdoutIsRegular() (bool, error) {
	var st unix.Stat_t
	if err := unix.Fstat(1, &st); err != nil {
		return false, os.NewSyscallError("fstat", err)
	}
	return st.Mode&unix.S_IFMT == unix.S_IFREG, nil
}
