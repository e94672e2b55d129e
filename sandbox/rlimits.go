//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sandbox

import (
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"

	"github.com/tscat/tscat/sandbox/rlimit"
)

// Replaced by tests.
var stdoutIsRegular = rlimit.StdoutIsRegular

// initRlimits describes the limits Init lowers. If stdout cannot be
// inspected, the limits for a non-regular stdout are reported.
func initRlimits() []specs.POSIXRlimit {
	regular, err := stdoutIsRegular()
	if err != nil {
		logrus.Debugf("sandbox: %v, describing limits for a non-regular stdout", err)
	}
	return rlimit.InitLimits(regular).OCI()
}
