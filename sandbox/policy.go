package sandbox

import (
	"github.com/opencontainers/runtime-spec/specs-go"
)

// Policy describes what the compiled-in backend does in each phase.
type Policy struct {
	Backend string        `json:"backend"`
	Phases  []PhasePolicy `json:"phases"`
}

// PhasePolicy is the restriction applied by one phase. Only the fields of
// the active backend are set.
type PhasePolicy struct {
	Phase string `json:"phase"`
	// CloseDescriptors is set when every descriptor above stderr is closed
	// before the restriction is applied.
	CloseDescriptors bool                `json:"closeDescriptors,omitempty"`
	Seccomp          *specs.LinuxSeccomp `json:"seccomp,omitempty"`
	Rlimits          []specs.POSIXRlimit `json:"rlimits,omitempty"`
	Rights           map[string][]string `json:"rights,omitempty"`
}

// Describe returns the policy of the compiled-in backend. Nothing is
// applied.
func Describe() Policy {
	return describe(active)
}

func describe(l limiter) Policy {
	return Policy{
		Backend: l.backend().String(),
		Phases:  l.describe(),
	}
}

func emptyPhases() []PhasePolicy {
	return []PhasePolicy{
		{Phase: ProcessInit.String()},
		{Phase: StdinLockdown.String()},
	}
}
