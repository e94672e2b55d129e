// Package tscat timestamps lines read from an untrusted stream.
package tscat

import (
	"errors"
	"fmt"
	"time"
)

// Stream selects the outputs a line is copied to.
type Stream int

const (
	Stdout Stream = 1 << iota
	Stderr

	Both = Stdout | Stderr
)

// WriteErrorPolicy is what happens when an output would block.
type WriteErrorPolicy int

const (
	// Block waits for the output to drain.
	Block WriteErrorPolicy = iota
	// Drop discards a chunk that could not be written without blocking.
	Drop
	// Exit fails the filter.
	Exit
)

func (p WriteErrorPolicy) String() string {
	switch p {
	case Block:
		return "block"
	case Drop:
		return "drop"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseWriteErrorPolicy parses "block", "drop" or "exit".
func ParseWriteErrorPolicy(s string) (WriteErrorPolicy, error) {
	switch s {
	case "block":
		return Block, nil
	case "drop":
		return Drop, nil
	case "exit":
		return Exit, nil
	}
	return Block, fmt.Errorf("invalid option: %s: block|drop|exit", s)
}

const (
	DefaultFormat  = "%FT%T%z"
	DefaultMaxLine = 4096

	// MinMaxLine is the smallest chunk size accepted.
	MinMaxLine = 16

	// Longest timestamp printed. Anything longer is dropped, along with its
	// separator.
	maxTimestamp = 62
)

var errInvalidOutput = errors.New("output must be between 0 and 3")

// Config is fixed before the filter starts reading.
type Config struct {
	Output Stream
	// Format is a strftime(3) format. An empty format disables the
	// timestamp.
	Format     string
	Label      string
	WriteError WriteErrorPolicy
	// MaxLine is the largest chunk written at once. Longer lines are
	// split, and only the first chunk is prefixed.
	MaxLine int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Validate checks c and fills in defaults.
func (c *Config) Validate() error {
	if c.Output < 0 || c.Output > Both {
		return fmt.Errorf("%w: %d", errInvalidOutput, c.Output)
	}
	if c.WriteError < Block || c.WriteError > Exit {
		return fmt.Errorf("invalid write error policy %s", c.WriteError)
	}
	if c.MaxLine == 0 {
		c.MaxLine = DefaultMaxLine
	}
	if c.MaxLine < MinMaxLine {
		return fmt.Errorf("maximum line length %d is below %d bytes", c.MaxLine, MinMaxLine)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return nil
}
