//go:build linux

package seccomp

import (
	"fmt"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

// Offsets into struct seccomp_data.
const (
	offsetNr   = 0
	offsetArch = 4
	offsetArgs = 16

	maxArgs = 6
	// BPF_MAXINSNS
	maxInstructions = 4096
)

var loadNr = bpf.LoadAbsolute{Off: offsetNr, Size: 4}

// Program is a compiled filter.
type Program struct {
	Arch         Arch
	Instructions []bpf.Instruction
	// Omitted lists the table entries with no syscall number on Arch.
	Omitted []string
}

// Compile translates table into a BPF program for arch. The program
// validates the architecture first, then tests every rule in order, and
// ends with the failure action.
func Compile(arch Arch, table Table) (*Program, error) {
	if arch.Audit == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArch, arch.Name)
	}

	fail := bpf.RetConstant{Val: failAction}
	p := &Program{
		Arch: arch,
		Instructions: []bpf.Instruction{
			bpf.LoadAbsolute{Off: offsetArch, Size: 4},
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: arch.Audit, SkipTrue: 1},
			fail,
			loadNr,
		},
	}

	seen := make(map[uint32]string, len(table))
	for _, rule := range table {
		nr, ok := arch.Syscalls[rule.Name]
		if !ok {
			p.Omitted = append(p.Omitted, rule.Name)
			continue
		}
		if prev, dup := seen[nr]; dup {
			return nil, fmt.Errorf("%w: %s (%d) is already matched by %s", ErrDuplicateRule, rule.Name, nr, prev)
		}
		seen[nr] = rule.Name

		insns, err := emit(rule, nr)
		if err != nil {
			return nil, err
		}
		p.Instructions = append(p.Instructions, insns...)
	}
	p.Instructions = append(p.Instructions, fail)

	if len(p.Instructions) > maxInstructions {
		return nil, fmt.Errorf("%w: %d instructions", ErrProgramTooLong, len(p.Instructions))
	}
	return p, nil
}

func emit(rule Rule, nr uint32) ([]bpf.Instruction, error) {
	if rule.Arg != nil {
		if rule.Action != ActAllow {
			return nil, fmt.Errorf("%w: %s: argument match on %s rule", ErrInvalidRule, rule.Name, rule.Action)
		}
		if rule.Arg.Index >= maxArgs {
			return nil, fmt.Errorf("%w: %s: argument index %d", ErrInvalidRule, rule.Name, rule.Arg.Index)
		}
		// The accumulator must hold the syscall number again on every path
		// that falls through to the next rule.
		return []bpf.Instruction{
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: nr, SkipFalse: 4},
			bpf.LoadAbsolute{Off: argOffset(rule.Arg.Index), Size: 4},
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: rule.Arg.Value, SkipFalse: 1},
			bpf.RetConstant{Val: retAllow},
			loadNr,
		}, nil
	}

	var ret uint32
	switch rule.Action {
	case ActAllow:
		ret = retAllow
	case ActErrno:
		if rule.Errno == 0 || uint32(rule.Errno) > retData {
			return nil, fmt.Errorf("%w: %s: errno %d", ErrInvalidRule, rule.Name, rule.Errno)
		}
		ret = retErrno | uint32(rule.Errno)
	case ActDefault:
		ret = failAction
	default:
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidRule, rule.Name, rule.Action)
	}
	return []bpf.Instruction{
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: nr, SkipFalse: 1},
		bpf.RetConstant{Val: ret},
	}, nil
}

// argOffset is the offset of the low word of args[i]. All supported
// architectures are little-endian.
func argOffset(i uint) uint32 {
	return offsetArgs + 8*uint32(i)
}

// Assemble encodes the program in the kernel's sock_filter format.
func (p *Program) Assemble() ([]unix.SockFilter, error) {
	raw, err := bpf.Assemble(p.Instructions)
	if err != nil {
		return nil, fmt.Errorf("assemble seccomp program: %w", err)
	}
	filter := make([]unix.SockFilter, 0, len(raw))
	for _, insn := range raw {
		filter = append(filter, unix.SockFilter{
			Code: insn.Op,
			Jt:   insn.Jt,
			Jf:   insn.Jf,
			K:    insn.K,
		})
	}
	return filter, nil
}
