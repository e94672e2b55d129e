//go:build freebsd && !sandbox_rlimit && !sandbox_none

package sandbox

import (
	"github.com/tscat/tscat/sandbox/capsicum"
	"github.com/tscat/tscat/sandbox/rlimit"
)

// Active is the backend compiled into this binary.
const Active = Capsicum

var active limiter = capsicumLimiter{}

type capsicumLimiter struct{}

func (capsicumLimiter) backend() Backend { return Capsicum }

func (capsicumLimiter) processInit() error {
	return rlimit.Init()
}

func (capsicumLimiter) lockdownStdin() error {
	warmRuntime()
	if err := closeDescriptors(); err != nil {
		return err
	}
	return capsicum.Apply()
}

func (capsicumLimiter) describe() []PhasePolicy {
	return []PhasePolicy{
		{
			Phase:   ProcessInit.String(),
			Rlimits: initRlimits(),
		},
		{
			Phase:            StdinLockdown.String(),
			CloseDescriptors: true,
			Rights:           capsicum.Describe(),
		},
	}
}
