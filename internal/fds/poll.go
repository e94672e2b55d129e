//go:build unix

package fds

import (
	_ "unsafe" // for go:linkname
)

// isPollDescriptor reports whether fd belongs to the Go runtime's network
// poller (the epoll, kqueue or event descriptor). Closing it would wedge
// every goroutine blocked in the poller.
//
//go:linkname isPollDescriptor internal/poll.IsPollDescriptor
func isPollDescriptor(fd uintptr) bool
