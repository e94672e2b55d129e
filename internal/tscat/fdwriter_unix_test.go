//go:build unix

package tscat

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

func TestFDWriterNonblocking(t *testing.T) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		t.Fatal(err)
	}
	defer unix.Close(p[0])
	defer unix.Close(p[1])

	if err := SetNonblock(p[1]); err != nil {
		t.Fatal(err)
	}
	w := FDWriter{Fd: p[1], Name: "pipe"}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 16)
	n, err := unix.Read(p[0], buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:n], []byte("hello\n")) {
		t.Errorf("read %q", buf[:n])
	}

	// Fill the pipe until the kernel refuses.
	chunk := bytes.Repeat([]byte{'x'}, 4096)
	for i := 0; i < 1<<12; i++ {
		if _, err = w.Write(chunk); err != nil {
			break
		}
	}
	if !errors.Is(err, syscall.EAGAIN) {
		t.Errorf("got %v, want EAGAIN", err)
	}
}
