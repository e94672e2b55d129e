//go:build linux && !seccomp_debug

package seccomp

import "github.com/opencontainers/runtime-spec/specs-go"

// failAction terminates the whole thread group. SECCOMP_RET_KILL_THREAD
// would leave the remaining runtime threads of a Go process running.
const (
	failAction    = retKillProcess
	failOCIAction = specs.ActKillProcess
)
