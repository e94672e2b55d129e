//go:build !sandbox_none && (darwin || netbsd || openbsd || dragonfly || (freebsd && sandbox_rlimit) || (linux && (sandbox_rlimit || cgo || !(amd64 || arm64 || 386 || arm))))

package sandbox

import (
	"github.com/tscat/tscat/sandbox/rlimit"
)

// Active is the backend compiled into this binary.
const Active = Rlimit

var active limiter = rlimitLimiter{}

type rlimitLimiter struct{}

func (rlimitLimiter) backend() Backend { return Rlimit }

func (rlimitLimiter) processInit() error {
	return rlimit.Init()
}

func (rlimitLimiter) lockdownStdin() error {
	warmRuntime()
	if err := closeDescriptors(); err != nil {
		return err
	}
	return rlimit.Lockdown()
}

func (rlimitLimiter) describe() []PhasePolicy {
	return []PhasePolicy{
		{
			Phase:   ProcessInit.String(),
			Rlimits: initRlimits(),
		},
		{
			Phase:            StdinLockdown.String(),
			CloseDescriptors: true,
			Rlimits:          rlimit.LockdownLimits().OCI(),
		},
	}
}
