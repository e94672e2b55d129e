//go:build linux

package seccomp

import "github.com/opencontainers/runtime-spec/specs-go"

// Arch describes one syscall ABI.
type Arch struct {
	// Name is the GOARCH the table was written for.
	Name string
	// Audit is the AUDIT_ARCH_* value the kernel reports in seccomp_data.
	Audit uint32
	// OCI is the runtime-spec name of the architecture.
	OCI specs.Arch
	// CloneFlags is the exact flag word the Go runtime passes to clone(2)
	// when it starts a new M: CLONE_VM|CLONE_FS|CLONE_FILES|CLONE_SIGHAND|
	// CLONE_SYSVSEM|CLONE_THREAD, plus CLONE_SETTLS where runtime.clone
	// installs the TLS base itself.
	CloneFlags uint32
	// Syscalls maps syscall names to numbers. Syscalls the architecture
	// does not have are absent.
	Syscalls map[string]uint32
}

// Native returns the ABI of the running binary. Its Audit field is zero on
// architectures without a syscall table.
func Native() Arch {
	return native
}

// Supported reports whether the running architecture has a syscall table.
func Supported() bool {
	return native.Audit != 0
}
