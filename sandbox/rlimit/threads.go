//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rlimit

import (
	"runtime"
	"sync"
)

// reserveThreads makes the runtime start GOMAXPROCS+spare OS threads now.
// Each goroutine pins itself to a thread until all of them are running, so
// every one of them needs a thread of its own. Unlocking hands the threads
// back to the scheduler's idle list, where they stay for reuse.
func reserveThreads(spare int) {
	n := runtime.GOMAXPROCS(0) + spare
	release := make(chan struct{})
	var ready, done sync.WaitGroup
	ready.Add(n)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer done.Done()
			runtime.LockOSThread()
			ready.Done()
			<-release
			runtime.UnlockOSThread()
		}()
	}
	ready.Wait()
	close(release)
	done.Wait()
}
