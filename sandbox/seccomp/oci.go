//go:build linux

package seccomp

import (
	"github.com/opencontainers/runtime-spec/specs-go"
)

const flagTsync specs.LinuxSeccompFlag = "SECCOMP_FILTER_FLAG_TSYNC"

// OCI describes t, as compiled for arch, in the runtime-spec seccomp format.
// Syscalls arch does not know are left out, like Compile does.
func OCI(arch Arch, t Table) *specs.LinuxSeccomp {
	config := &specs.LinuxSeccomp{
		DefaultAction: failOCIAction,
		Flags:         []specs.LinuxSeccompFlag{flagTsync},
	}
	if arch.OCI != "" {
		config.Architectures = []specs.Arch{arch.OCI}
	}
	for _, rule := range t {
		if _, ok := arch.Syscalls[rule.Name]; !ok {
			continue
		}
		config.Syscalls = append(config.Syscalls, ociSyscall(rule))
	}
	return config
}

func ociSyscall(rule Rule) specs.LinuxSyscall {
	sc := specs.LinuxSyscall{Names: []string{rule.Name}}
	switch rule.Action {
	case ActAllow:
		sc.Action = specs.ActAllow
	case ActErrno:
		sc.Action = specs.ActErrno
		errno := uint(rule.Errno)
		sc.ErrnoRet = &errno
	default:
		sc.Action = failOCIAction
	}
	if rule.Arg != nil {
		// Only the low word of the argument is compared.
		sc.Args = []specs.LinuxSeccompArg{{
			Index:    rule.Arg.Index,
			Value:    0xffffffff,
			ValueTwo: uint64(rule.Arg.Value),
			Op:       specs.OpMaskedEqual,
		}}
	}
	return sc
}
