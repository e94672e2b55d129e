package seccomp

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

var errEmptyFilter = errors.New("seccomp: empty filter")

// Load installs filter on every thread of the process. It sets
// PR_SET_NO_NEW_PRIVS first, which seccomp requires from unprivileged
// callers, and uses SECCOMP_FILTER_FLAG_TSYNC so that the threads the Go
// runtime has already started get the same filter.
func Load(filter []unix.SockFilter) error {
	if len(filter) == 0 {
		return errEmptyFilter
	}
	prog := unix.SockFprog{
		Len:    uint16(len(filter)),
		Filter: &filter[0],
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return os.NewSyscallError("prctl(PR_SET_NO_NEW_PRIVS)", err)
	}
	r1, _, errno := unix.Syscall(unix.SYS_SECCOMP,
		seccompSetModeFilter,
		seccompFilterFlagTsync,
		uintptr(unsafe.Pointer(&prog)))
	runtime.KeepAlive(filter)
	if errno != 0 {
		return os.NewSyscallError("seccomp(SECCOMP_SET_MODE_FILTER)", errno)
	}
	if r1 != 0 {
		// With TSYNC a positive return value is the id of the thread that
		// could not be synchronized.
		return fmt.Errorf("seccomp: thread %d could not be synchronized", r1)
	}
	return nil
}

// Install compiles t for the running architecture and loads it.
func Install(t Table) (*Program, error) {
	p, err := Compile(Native(), t)
	if err != nil {
		return nil, err
	}
	if len(p.Omitted) > 0 {
		logrus.Debugf("seccomp: %d syscalls not available on %s: %v", len(p.Omitted), p.Arch.Name, p.Omitted)
	}
	filter, err := p.Assemble()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("seccomp: loading %d rules (%d instructions) for %s", len(t)-len(p.Omitted), len(filter), p.Arch.Name)
	if err := Load(filter); err != nil {
		return nil, err
	}
	return p, nil
}
