// Package sandbox restricts the process in two irreversible steps: Init
// when the process starts, and LockdownStdin right before the first byte of
// untrusted input is read.
//
// The mechanism is chosen at build time. Linux builds filter syscalls with
// seccomp, FreeBSD enters Capsicum capability mode and the other unix
// systems lower resource limits. The sandbox_rlimit and sandbox_none build
// tags select the resource limit backend or no restriction at all. Targets
// without a backend fail both calls with ErrUnsupportedPlatform.
package sandbox

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Backend identifies a restriction mechanism.
type Backend int

const (
	None Backend = iota
	Seccomp
	Capsicum
	Rlimit
	Unsupported
)

func (b Backend) String() string {
	switch b {
	case None:
		return "none"
	case Seccomp:
		return "seccomp"
	case Capsicum:
		return "capsicum"
	case Rlimit:
		return "rlimit"
	case Unsupported:
		return "unsupported"
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// Phase is one of the two restriction points.
type Phase int

const (
	ProcessInit Phase = iota
	StdinLockdown
)

func (p Phase) String() string {
	switch p {
	case ProcessInit:
		return "process-init"
	case StdinLockdown:
		return "stdin-lockdown"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// op is the name of the call that enters p.
func (p Phase) op() string {
	if p == ProcessInit {
		return "init"
	}
	return "lockdown_stdin"
}

var (
	// ErrSetupFailure matches every error caused by a failed restriction
	// call.
	ErrSetupFailure = errors.New("sandbox setup failed")
	// ErrUnsupportedPlatform is returned by both calls when no backend was
	// compiled in for the target.
	ErrUnsupportedPlatform = errors.New("no sandbox backend for this platform")
)

// Error records the failed call and its cause.
type Error struct {
	Op      string
	Phase   Phase
	Backend Backend
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sandbox %s (%s): %v", e.Op, e.Backend, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrSetupFailure && !errors.Is(e.Err, ErrUnsupportedPlatform)
}

// limiter is implemented by exactly one backend per build.
type limiter interface {
	backend() Backend
	processInit() error
	lockdownStdin() error
	describe() []PhasePolicy
}

// Init restricts the whole process. It must be called once, before any
// untrusted input is read, and after everything that needs file system
// access (the local time zone in particular) has been loaded.
func Init() error {
	return enter(active, ProcessInit)
}

// LockdownStdin closes every descriptor above stderr and restricts the
// process to reading stdin and writing stdout and stderr. It must follow
// Init, once configuration is final.
func LockdownStdin() error {
	return enter(active, StdinLockdown)
}

func enter(l limiter, phase Phase) error {
	b := l.backend()
	logrus.Debugf("sandbox: entering %s using %s", phase, b)

	var err error
	switch phase {
	case ProcessInit:
		err = l.processInit()
	case StdinLockdown:
		err = l.lockdownStdin()
	default:
		err = fmt.Errorf("unknown phase %d", int(phase))
	}
	if err != nil {
		return &Error{Op: phase.op(), Phase: phase, Backend: b, Err: err}
	}
	return nil
}
