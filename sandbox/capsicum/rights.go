// Package capsicum limits the standard descriptors to the rights the line
// filter needs and enters FreeBSD capability mode.
package capsicum

import "errors"

// Right is a Capsicum capability right.
type Right int

const (
	// Read is CAP_READ.
	Read Right = iota
	// Write is CAP_WRITE.
	Write
	// Event is CAP_EVENT, needed to poll a descriptor.
	Event
)

func (r Right) String() string {
	switch r {
	case Read:
		return "CAP_READ"
	case Write:
		return "CAP_WRITE"
	case Event:
		return "CAP_EVENT"
	}
	return "CAP_UNKNOWN"
}

// Limit is the set of rights one descriptor keeps.
type Limit struct {
	Fd     int
	Name   string
	Rights []Right
}

// Descriptors is what survives capability mode: stdin can be read and
// polled, stdout and stderr written to. Read stays on the outputs because
// a terminal opened read-write serves all three.
var Descriptors = []Limit{
	{Fd: 0, Name: "stdin", Rights: []Right{Read, Event}},
	{Fd: 1, Name: "stdout", Rights: []Right{Write, Read}},
	{Fd: 2, Name: "stderr", Rights: []Right{Write, Read}},
}

// ErrNotSupported is returned by Apply outside of FreeBSD.
var ErrNotSupported = errors.New("capsicum is not supported on this platform")

// Describe returns the rights of each descriptor by name.
func Describe() map[string][]string {
	out := make(map[string][]string, len(Descriptors))
	for _, d := range Descriptors {
		names := make([]string, 0, len(d.Rights))
		for _, r := range d.Rights {
			names = append(names, r.String())
		}
		out[d.Name] = names
	}
	return out
}
