//go:build linux && !cgo && (amd64 || arm64 || 386 || arm) && !sandbox_rlimit && !sandbox_none

package sandbox

import (
	"github.com/sirupsen/logrus"
	"github.com/syndtr/gocapability/capability"

	"github.com/tscat/tscat/sandbox/seccomp"
)

// Active is the backend compiled into this binary.
const Active = Seccomp

var active limiter = seccompLimiter{}

type seccompLimiter struct{}

func (seccompLimiter) backend() Backend { return Seccomp }

func (seccompLimiter) processInit() error {
	warnCapabilities()
	_, err := seccomp.Install(seccomp.ProcessInit)
	return err
}

func (seccompLimiter) lockdownStdin() error {
	warmRuntime()
	if err := closeDescriptors(); err != nil {
		return err
	}
	_, err := seccomp.Install(seccomp.StdinLockdown)
	return err
}

func (seccompLimiter) describe() []PhasePolicy {
	arch := seccomp.Native()
	return []PhasePolicy{
		{
			Phase:   ProcessInit.String(),
			Seccomp: seccomp.OCI(arch, seccomp.ProcessInit),
		},
		{
			Phase:            StdinLockdown.String(),
			CloseDescriptors: true,
			Seccomp:          seccomp.OCI(arch, seccomp.StdinLockdown),
		},
	}
}

// warnCapabilities logs effective capabilities. The filter restricts which
// syscalls can be made, not what the allowed ones may do.
func warnCapabilities() {
	caps, err := capability.NewPid2(0)
	if err == nil {
		err = caps.Load()
	}
	if err != nil {
		logrus.Debugf("sandbox: cannot read capabilities: %v", err)
		return
	}
	if !caps.Empty(capability.EFFECTIVE) {
		logrus.Warnf("running with effective capabilities: %s", caps.StringCap(capability.EFFECTIVE))
	}
}
