//go:build linux

// Package seccomp builds the classic BPF programs used by the syscall
// filtering backend and loads them into the kernel.
//
// A filter is described by a Table: an ordered list of rules matched
// first-match against the syscall number. The table only names syscalls;
// an Arch supplies the numbers for one architecture, and names it does not
// know are left out of the compiled program.
package seccomp

import (
	"errors"
	"fmt"
	"syscall"
)

// Action is the outcome of a matched rule.
type Action int

const (
	// ActDefault sends the syscall to the filter's failure action, as if
	// no rule had matched.
	ActDefault Action = iota
	// ActAllow lets the syscall through.
	ActAllow
	// ActErrno fails the syscall with the rule's errno.
	ActErrno
)

func (a Action) String() string {
	switch a {
	case ActDefault:
		return "default"
	case ActAllow:
		return "allow"
	case ActErrno:
		return "errno"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ArgMatch restricts a rule to calls whose argument Index has Value in its
// low 32 bits.
type ArgMatch struct {
	Index uint
	Value uint32
}

// Rule maps one syscall name to an action.
type Rule struct {
	Name   string
	Action Action
	// Errno is returned for ActErrno rules.
	Errno syscall.Errno
	// Arg, if set, makes the rule argument-sensitive. Only ActAllow rules
	// may carry an argument match.
	Arg *ArgMatch
}

func (r Rule) String() string {
	s := r.Name + ": " + r.Action.String()
	if r.Action == ActErrno {
		s += fmt.Sprintf(" (%s)", r.Errno)
	}
	if r.Arg != nil {
		s += fmt.Sprintf(" if arg%d == %#x", r.Arg.Index, r.Arg.Value)
	}
	return s
}

// Allow returns a rule permitting name.
func Allow(name string) Rule {
	return Rule{Name: name, Action: ActAllow}
}

// AllowArg returns a rule permitting name only when argument index equals
// value.
func AllowArg(name string, index uint, value uint32) Rule {
	return Rule{Name: name, Action: ActAllow, Arg: &ArgMatch{Index: index, Value: value}}
}

// Deny returns a rule failing name with errno.
func Deny(name string, errno syscall.Errno) Rule {
	return Rule{Name: name, Action: ActErrno, Errno: errno}
}

// Kill returns a rule sending name straight to the failure action.
func Kill(name string) Rule {
	return Rule{Name: name, Action: ActDefault}
}

// Table is an ordered, first-match list of rules. Every syscall the table
// does not match is handled by the failure action.
type Table []Rule

// Names returns the syscall names of the table in declaration order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, r := range t {
		names = append(names, r.Name)
	}
	return names
}

var (
	ErrDuplicateRule   = errors.New("duplicate seccomp rule")
	ErrProgramTooLong  = errors.New("seccomp program too long")
	ErrUnsupportedArch = errors.New("seccomp: unsupported architecture")
	ErrInvalidRule     = errors.New("invalid seccomp rule")
)

// Values from <linux/seccomp.h>.
const (
	retKillProcess = 0x80000000
	retTrap        = 0x00030000
	retErrno       = 0x00050000
	retAllow       = 0x7fff0000
	retData        = 0x0000ffff

	seccompSetModeFilter   = 1
	seccompFilterFlagTsync = 1
)
