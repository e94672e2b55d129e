//go:build !sandbox_none && !linux && !freebsd && !darwin && !netbsd && !openbsd && !dragonfly

package sandbox

// Active is the backend compiled into this binary.
const Active = Unsupported

var active limiter = unsupportedLimiter{}
