package seccomp

import (
	"github.com/opencontainers/runtime-spec/specs-go"
	"golang.org/x/sys/unix"
)

// EABI has no old-style mmap.
var native = Arch{
	Name:       "arm",
	Audit:      0x40000028, // AUDIT_ARCH_ARM
	OCI:        specs.ArchARM,
	CloneFlags: 0x50f00,
	Syscalls: map[string]uint32{
		"_llseek":           unix.SYS__LLSEEK,
		"brk":               unix.SYS_BRK,
		"clock_getres":      unix.SYS_CLOCK_GETRES,
		"clock_gettime":     unix.SYS_CLOCK_GETTIME,
		"clock_gettime64":   403,
		"clock_nanosleep":   unix.SYS_CLOCK_NANOSLEEP,
		"clone":             unix.SYS_CLONE,
		"clone3":            unix.SYS_CLONE3,
		"close":             unix.SYS_CLOSE,
		"epoll_create1":     unix.SYS_EPOLL_CREATE1,
		"epoll_ctl":         unix.SYS_EPOLL_CTL,
		"epoll_pwait":       unix.SYS_EPOLL_PWAIT,
		"epoll_wait":        unix.SYS_EPOLL_WAIT,
		"eventfd2":          unix.SYS_EVENTFD2,
		"exit":              unix.SYS_EXIT,
		"exit_group":        unix.SYS_EXIT_GROUP,
		"fcntl":             unix.SYS_FCNTL,
		"fcntl64":           unix.SYS_FCNTL64,
		"fstat":             unix.SYS_FSTAT,
		"fstat64":           unix.SYS_FSTAT64,
		"fstatat64":         unix.SYS_FSTATAT64,
		"fstatfs":           unix.SYS_FSTATFS,
		"fstatfs64":         unix.SYS_FSTATFS64,
		"futex":             unix.SYS_FUTEX,
		"futex_time64":      422,
		"getdents64":        unix.SYS_GETDENTS64,
		"getpid":            unix.SYS_GETPID,
		"getrandom":         unix.SYS_GETRANDOM,
		"gettid":            unix.SYS_GETTID,
		"gettimeofday":      unix.SYS_GETTIMEOFDAY,
		"ioctl":             unix.SYS_IOCTL,
		"lseek":             unix.SYS_LSEEK,
		"madvise":           unix.SYS_MADVISE,
		"mmap2":             unix.SYS_MMAP2,
		"mprotect":          unix.SYS_MPROTECT,
		"mremap":            unix.SYS_MREMAP,
		"munmap":            unix.SYS_MUNMAP,
		"nanosleep":         unix.SYS_NANOSLEEP,
		"open":              unix.SYS_OPEN,
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
		"sigreturn":         unix.SYS_SIGRETURN,
		"stat":              unix.SYS_STAT,
		"stat64":            unix.SYS_STAT64,
		"tgkill":            unix.SYS_TGKILL,
		"ugetrlimit":        unix.SYS_UGETRLIMIT,
		"write":             unix.SYS_WRITE,
		"writev":            unix.SYS_WRITEV,
	},
}
