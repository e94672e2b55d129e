//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rlimit

import (
	"errors"
	"math"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestApplyRefusesRaise(t *testing.T) {
	var cur unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &cur); err != nil {
		t.Fatal(err)
	}
	hard := get(cur.Max)
	if hard == math.MaxUint64 {
		t.Skip("RLIMIT_NOFILE hard limit is unlimited")
	}
	err := Limits{{MaxOpenFiles, hard + 1}}.Apply()
	if !errors.Is(err, ErrRaise) {
		t.Fatalf("got %v, want %v", err, ErrRaise)
	}

	var after unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &after); err != nil {
		t.Fatal(err)
	}
	if after != cur {
		t.Errorf("limit changed from %+v to %+v", cur, after)
	}
}

func TestApplyKeepsLowerSoftLimit(t *testing.T) {
	var cur unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &cur); err != nil {
		t.Fatal(err)
	}
	// Re-applying the current hard limit only drops privileges that are
	// already gone.
	if err := (Limits{{MaxOpenFiles, get(cur.Max)}}).Apply(); err != nil {
		t.Fatal(err)
	}
	var after unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &after); err != nil {
		t.Fatal(err)
	}
	if get(after.Cur) != get(cur.Cur) {
		t.Errorf("soft limit changed from %d to %d", get(cur.Cur), get(after.Cur))
	}
}

func TestGetSet(t *testing.T) {
	var i int64
	set(&i, math.MaxUint64)
	if i != math.MaxInt64 {
		t.Errorf("int64: got %d, want MaxInt64", i)
	}
	if got := get(int64(-1)); got != math.MaxUint64 {
		t.Errorf("get(-1) = %d", got)
	}
	var u uint64
	set(&u, 42)
	if get(u) != 42 {
		t.Errorf("uint64: got %d", u)
	}

	type rlim int64
	var r rlim
	set(&r, math.MaxInt64+1)
	if r != math.MaxInt64 {
		t.Errorf("named int64: got %d, want MaxInt64", r)
	}
}

func TestReserveThreads(t *testing.T) {
	// Must not deadlock, and must leave the caller unlocked.
	reserveThreads(2)
	done := make(chan struct{})
	go func() {
		runtime.Gosched()
		close(done)
	}()
	<-done
}
