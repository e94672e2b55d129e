//go:build linux && !amd64 && !arm64 && !386 && !arm

package seccomp

import "runtime"

// No syscall table: Compile fails with ErrUnsupportedArch.
var native = Arch{Name: runtime.GOARCH}
