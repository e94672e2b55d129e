package seccomp

import (
	"github.com/opencontainers/runtime-spec/specs-go"
	"golang.org/x/sys/unix"
)

// arm64 uses the generic syscall table: no open, stat, epoll_wait, mmap2
// or lseek variants.
var native = Arch{
	Name:       "arm64",
	Audit:      0xc00000b7, // AUDIT_ARCH_AARCH64
	OCI:        specs.ArchAARCH64,
	CloneFlags: 0x50f00,
	Syscalls: map[string]uint32{
		"brk":               unix.SYS_BRK,
		"clock_getres":      unix.SYS_CLOCK_GETRES,
		"clock_gettime":     unix.SYS_CLOCK_GETTIME,
		"clock_nanosleep":   unix.SYS_CLOCK_NANOSLEEP,
		"clone":             unix.SYS_CLONE,
		"clone3":            unix.SYS_CLONE3,
		"close":             unix.SYS_CLOSE,
		"epoll_create1":     unix.SYS_EPOLL_CREATE1,
		"epoll_ctl":         unix.SYS_EPOLL_CTL,
		"epoll_pwait":       unix.SYS_EPOLL_PWAIT,
		"eventfd2":          unix.SYS_EVENTFD2,
		"exit":              unix.SYS_EXIT,
		"exit_group":        unix.SYS_EXIT_GROUP,
		"fcntl":             unix.SYS_FCNTL,
		"fstat":             unix.SYS_FSTAT,
		"fstatfs":           unix.SYS_FSTATFS,
		"futex":             unix.SYS_FUTEX,
		"getdents64":        unix.SYS_GETDENTS64,
		"getpid":            unix.SYS_GETPID,
		"getrandom":         unix.SYS_GETRANDOM,
		"getrlimit":         unix.SYS_GETRLIMIT,
		"gettid":            unix.SYS_GETTID,
		"gettimeofday":      unix.SYS_GETTIMEOFDAY,
		"ioctl":             unix.SYS_IOCTL,
		"lseek":             unix.SYS_LSEEK,
		"madvise":           unix.SYS_MADVISE,
		"mmap":              unix.SYS_MMAP,
		"mprotect":          unix.SYS_MPROTECT,
		"mremap":            unix.SYS_MREMAP,
		"munmap":            unix.SYS_MUNMAP,
		"nanosleep":         unix.SYS_NANOSLEEP,
		"newfstatat":        unix.SYS_FSTATAT,
		"openat":            unix.SYS_OPENAT,
		"pipe2":             unix.SYS_PIPE2,
		"prctl":             unix.SYS_PRCTL,
		"pread64":           unix.SYS_PREAD64,
		"preadv":            unix.SYS_PREADV,
		"prlimit64":         unix.SYS_PRLIMIT64,
		"pwrite64":          unix.SYS_PWRITE64,
		"pwritev":           unix.SYS_PWRITEV,
		"read":              unix.SYS_READ,
		"readv":             unix.SYS_READV,
		"restart_syscall":   unix.SYS_RESTART_SYSCALL,
		"rt_sigaction":      unix.SYS_RT_SIGACTION,
		"rt_sigprocmask":    unix.SYS_RT_SIGPROCMASK,
		"rt_sigreturn":      unix.SYS_RT_SIGRETURN,
		"sched_getaffinity": unix.SYS_SCHED_GETAFFINITY,
		"sched_yield":       unix.SYS_SCHED_YIELD,
		"seccomp":           unix.SYS_SECCOMP,
		"sigaltstack":       unix.SYS_SIGALTSTACK,
		"tgkill":            unix.SYS_TGKILL,
		"write":             unix.SYS_WRITE,
		"writev":            unix.SYS_WRITEV,
	},
}
