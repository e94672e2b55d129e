package tscat

import (
	"bufio"
	"errors"
	"io"
	"syscall"

	"github.com/ncruces/go-strftime"
	"github.com/sirupsen/logrus"
)

// Filter copies lines from a reader to the configured outputs, prefixing
// each line with a timestamp and a label.
type Filter struct {
	cfg     Config
	outputs []io.Writer
	buf     []byte
	// atLineStart is set when the next chunk starts a new line.
	atLineStart bool
	dropped     uint64
}

// New returns a filter writing to stdout and stderr as selected by
// cfg.Output.
func New(cfg Config, stdout, stderr io.Writer) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Filter{cfg: cfg, atLineStart: true}
	if cfg.Output&Stdout != 0 {
		f.outputs = append(f.outputs, stdout)
	}
	if cfg.Output&Stderr != 0 {
		f.outputs = append(f.outputs, stderr)
	}
	return f, nil
}

// Run reads r until EOF. Lines are read in chunks of at most MaxLine bytes.
// It returns nil on EOF and the first read error or unhandled write error
// otherwise.
func (f *Filter) Run(r io.Reader) error {
	br := bufio.NewReaderSize(r, f.cfg.MaxLine)
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			if werr := f.write(chunk); werr != nil {
				if f.cfg.WriteError == Drop && errors.Is(werr, syscall.EAGAIN) {
					f.dropped++
				} else {
					return werr
				}
			}
		}
		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
		case errors.Is(err, io.EOF):
			if f.dropped > 0 {
				logrus.Debugf("tscat: dropped %d chunks", f.dropped)
			}
			return nil
		default:
			return err
		}
	}
}

// Dropped returns the number of chunks discarded under the Drop policy.
func (f *Filter) Dropped() uint64 {
	return f.dropped
}

func (f *Filter) write(chunk []byte) error {
	// Clock and format are evaluated for every chunk, like the prefix is
	// for every line.
	ts := f.timestamp()

	f.buf = f.buf[:0]
	if f.atLineStart {
		if ts != "" {
			f.buf = append(f.buf, ts...)
			f.buf = append(f.buf, ' ')
		}
		if f.cfg.Label != "" {
			f.buf = append(f.buf, f.cfg.Label...)
			f.buf = append(f.buf, ' ')
		}
	}
	f.buf = append(f.buf, chunk...)

	for _, w := range f.outputs {
		if _, err := w.Write(f.buf); err != nil {
			return err
		}
	}
	f.atLineStart = chunk[len(chunk)-1] == '\n'
	return nil
}

func (f *Filter) timestamp() string {
	if f.cfg.Format == "" {
		return ""
	}
	ts := strftime.Format(f.cfg.Format, f.cfg.Now())
	if len(ts) > maxTimestamp {
		return ""
	}
	return ts
}
