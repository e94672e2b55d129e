//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package rlimit

// RLIMIT_NPROC from <sys/resource.h>; x/sys/unix does not export it on
// every BSD.
const rlimitNproc = 7
