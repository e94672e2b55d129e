// Package rlimit lowers process resource limits. It is the restriction
// backend for unix systems without a syscall filter, and the init phase of
// the Capsicum backend.
package rlimit

import (
	"errors"

	"github.com/opencontainers/runtime-spec/specs-go"
)

// Resource is a limit the sandbox lowers.
type Resource int

const (
	// MaxProcesses is RLIMIT_NPROC.
	MaxProcesses Resource = iota
	// MaxOpenFiles is RLIMIT_NOFILE.
	MaxOpenFiles
	// MaxFileSize is RLIMIT_FSIZE.
	MaxFileSize
)

func (r Resource) String() string {
	switch r {
	case MaxProcesses:
		return "RLIMIT_NPROC"
	case MaxOpenFiles:
		return "RLIMIT_NOFILE"
	case MaxFileSize:
		return "RLIMIT_FSIZE"
	}
	return "RLIMIT_UNKNOWN"
}

// Limit sets both the soft and the hard limit of Resource to Ceiling.
type Limit struct {
	Resource Resource
	Ceiling  uint64
}

// Limits are applied in order.
type Limits []Limit

// ErrRaise is returned when a ceiling is above the current hard limit.
// Limits are only ever lowered.
var ErrRaise = errors.New("refusing to raise resource limit")

// InitLimits are applied at process start. Forking is disabled; writes to
// files are disabled too unless stdout is itself a regular file.
func InitLimits(stdoutRegular bool) Limits {
	var l Limits
	if !stdoutRegular {
		l = append(l, Limit{Resource: MaxFileSize, Ceiling: 0})
	}
	return append(l, Limit{Resource: MaxProcesses, Ceiling: 0})
}

// LockdownLimits are applied once stdin is the only input left: no new
// descriptor may be opened.
func LockdownLimits() Limits {
	return Limits{{Resource: MaxOpenFiles, Ceiling: 0}}
}

// OCI describes l in the runtime-spec format.
func (l Limits) OCI() []specs.POSIXRlimit {
	out := make([]specs.POSIXRlimit, 0, len(l))
	for _, lim := range l {
		out = append(out, specs.POSIXRlimit{
			Type: lim.Resource.String(),
			Hard: lim.Ceiling,
			Soft: lim.Ceiling,
		})
	}
	return out
}
