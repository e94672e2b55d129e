//go:build sandbox_none

package sandbox

// Active is the backend compiled into this binary.
const Active = None

var active limiter = noneLimiter{}
