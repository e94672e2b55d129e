//go:build linux

package seccomp

import "syscall"

// ioRules cover reading stdin and writing stdout/stderr. They are listed
// first since they are the hottest syscalls of the filter.
var ioRules = []Rule{
	Allow("read"),
	Allow("write"),
	Allow("readv"),
	Allow("writev"),
	Allow("pread64"),
	Allow("pwrite64"),
	Allow("preadv"),
	Allow("pwritev"),
	Allow("ioctl"),
}

// runtimeRules are what the Go scheduler, garbage collector, netpoller and
// signal handling need for the lifetime of the process.
var runtimeRules = []Rule{
	Allow("futex"),
	Allow("futex_time64"),
	Allow("epoll_pwait"),
	Allow("epoll_wait"),
	Allow("sched_yield"),
	Allow("nanosleep"),
	Allow("clock_nanosleep"),
	Allow("clock_gettime"),
	Allow("clock_gettime64"),
	Allow("clock_getres"),
	Allow("gettimeofday"),
	Allow("mmap"),
	Allow("mmap2"),
	Allow("munmap"),
	Allow("mremap"),
	Allow("madvise"),
	Allow("mprotect"),
	Allow("brk"),
	Allow("getpid"),
	Allow("gettid"),
	Allow("tgkill"),
	Allow("rt_sigaction"),
	Allow("rt_sigprocmask"),
	Allow("rt_sigreturn"),
	Allow("sigreturn"),
	Allow("sigaltstack"),
	Allow("sched_getaffinity"),
	AllowArg("clone", 0, native.CloneFlags),
	Allow("set_thread_area"),
	Allow("getrandom"),
	Allow("restart_syscall"),
	Allow("exit"),
	Allow("exit_group"),
}

// statRules inspect descriptors that are already open.
var statRules = []Rule{
	Allow("fstat"),
	Allow("fstat64"),
	Allow("newfstatat"),
	Allow("fstatat64"),
	Allow("stat"),
	Allow("stat64"),
}

// setupRules are only needed until stdin is locked down: enumerating and
// closing descriptors, switching outputs to non-blocking mode, initializing
// the netpoller and installing the second filter.
var setupRules = []Rule{
	Allow("open"),
	Allow("openat"),
	Allow("close"),
	Allow("lseek"),
	Allow("_llseek"),
	Allow("fcntl"),
	Allow("fcntl64"),
	Allow("getdents64"),
	Allow("fstatfs"),
	Allow("fstatfs64"),
	Allow("epoll_create1"),
	Allow("epoll_ctl"),
	Allow("eventfd2"),
	Allow("pipe2"),
	Allow("prctl"),
	Allow("seccomp"),
	Allow("getrlimit"),
	Allow("ugetrlimit"),
	Allow("prlimit64"),
}

// The Go runtime never uses clone3; failing it with ENOSYS keeps any caller
// on the clone path that the filter can inspect.
var clone3Rule = Deny("clone3", syscall.ENOSYS)

// ProcessInit is installed at startup. It rejects everything outside of
// stdio, the runtime and descriptor bookkeeping.
var ProcessInit = concat(
	ioRules,
	runtimeRules,
	statRules,
	setupRules,
	[]Rule{clone3Rule},
)

// StdinLockdown is installed once configuration is final. Opening, seeking
// and closing files fail with an errno instead of killing the process, and
// no new descriptor can be created.
var StdinLockdown = concat(
	ioRules,
	runtimeRules,
	statRules,
	[]Rule{
		Deny("open", syscall.EACCES),
		Deny("openat", syscall.EACCES),
		Deny("lseek", syscall.ESPIPE),
		Deny("_llseek", syscall.ESPIPE),
		Deny("close", syscall.EIO),
		clone3Rule,
	},
)

func concat(groups ...[]Rule) Table {
	var t Table
	for _, g := range groups {
		t = append(t, g...)
	}
	return t
}
