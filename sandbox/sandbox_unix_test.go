//go:build unix

package sandbox

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"testing"

	"golang.org/x/sys/unix"
)

const childEnv = "_TSCAT_SANDBOX_CHILD"

func TestMain(m *testing.M) {
	if os.Getenv(childEnv) == "1" {
		os.Exit(sandboxedChild())
	}
	os.Exit(m.Run())
}

// sandboxedChild runs both phases in a fresh process with descriptor 3
// inherited, then reports what it can still do on stdout.
func sandboxedChild() int {
	if err := Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := LockdownStdin(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	startThreads()
	runtime.GC()
	fmt.Println("runtime: ok")

	if _, err := unix.Write(3, []byte("leak\n")); err != nil {
		fmt.Println("fd3: denied")
	} else {
		fmt.Println("fd3: written")
	}
	if f, err := os.Open("/dev/null"); err != nil {
		fmt.Println("open: denied")
	} else {
		f.Close()
		fmt.Println("open: allowed")
	}
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("stdin: %s", in)
	return 0
}

// startThreads makes the runtime create new Ms by wiring more goroutines
// than GOMAXPROCS to their own OS threads. RLIMIT_NPROC forbids new threads
// for unprivileged users, so the rlimit backend only runs on what it
// reserved.
func startThreads() {
	if Active == Rlimit {
		return
	}
	n := runtime.GOMAXPROCS(0) + 8
	var wired sync.WaitGroup
	release := make(chan struct{})
	wired.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			wired.Done()
			<-release
		}()
	}
	wired.Wait()
	close(release)
}

func TestSandboxedProcess(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "fd3")
	if err != nil {
		t.Fatal(err)
	}
	defer tmp.Close()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), childEnv+"=1")
	cmd.ExtraFiles = []*os.File{tmp}
	cmd.Stdin = strings.NewReader("hello\n")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()

	if Active == Unsupported {
		if err == nil || !strings.Contains(stderr.String(), ErrUnsupportedPlatform.Error()) {
			t.Fatalf("unsupported backend: err %v, stderr %q", err, stderr.String())
		}
		return
	}
	if err != nil {
		t.Fatalf("child failed: %v\nstderr:\n%s", err, stderr.String())
	}

	want := "runtime: ok\nfd3: denied\nopen: denied\nstdin: hello\n"
	if Active == None {
		want = "runtime: ok\nfd3: written\nopen: allowed\nstdin: hello\n"
	}
	if got := stdout.String(); got != want {
		t.Errorf("child output:\n%s\nwant:\n%s\nstderr:\n%s", got, want, stderr.String())
	}

	if Active != None {
		leaked, err := os.ReadFile(tmp.Name())
		if err != nil {
			t.Fatal(err)
		}
		if len(leaked) != 0 {
			t.Errorf("child wrote %q to descriptor 3", leaked)
		}
	}
}
