//go:build linux && seccomp_debug

package seccomp

import "github.com/opencontainers/runtime-spec/specs-go"

// failAction raises SIGSYS so the runtime prints the offending call site.
const (
	failAction    = retTrap
	failOCIAction = specs.ActTrap
)
