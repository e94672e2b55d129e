package tscat

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"
	"time"
)

var fixedTime = time.Date(2022, 3, 4, 5, 6, 7, 0, time.FixedZone("", -5*3600))

func fixedNow() time.Time { return fixedTime }

func TestFilter(t *testing.T) {
	for _, test := range []struct {
		name  string
		cfg   Config
		input string
		want  string
	}{
		{
			name:  "default format",
			cfg:   Config{Output: Stdout, Format: DefaultFormat},
			input: "a\nb\n",
			want:  "2022-03-04T05:06:07-0500 a\n2022-03-04T05:06:07-0500 b\n",
		},
		{
			name:  "label",
			cfg:   Config{Output: Stdout, Format: "%H:%M", Label: "web"},
			input: "x\n",
			want:  "05:06 web x\n",
		},
		{
			name:  "empty format",
			cfg:   Config{Output: Stdout, Label: "web"},
			input: "x\n",
			want:  "web x\n",
		},
		{
			name:  "no prefix",
			cfg:   Config{Output: Stdout},
			input: "x\ny",
			want:  "x\ny",
		},
		{
			name:  "unterminated last line",
			cfg:   Config{Output: Stdout, Format: "%Y"},
			input: "x\ny",
			want:  "2022 x\n2022 y",
		},
		{
			name:  "empty lines",
			cfg:   Config{Output: Stdout, Format: "%Y"},
			input: "\n\n",
			want:  "2022 \n2022 \n",
		},
		{
			name:  "long line is split",
			cfg:   Config{Output: Stdout, Format: "%Y", MaxLine: 16},
			input: strings.Repeat("a", 20) + "\nb\n",
			want:  "2022 " + strings.Repeat("a", 20) + "\n2022 b\n",
		},
		{
			name:  "oversized timestamp",
			cfg:   Config{Output: Stdout, Format: strings.Repeat("%Y", 16), Label: "l"},
			input: "x\n",
			want:  "l x\n",
		},
		{
			name:  "no output",
			cfg:   Config{Output: 0, Format: "%Y"},
			input: "x\n",
			want:  "",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			test.cfg.Now = fixedNow
			f, err := New(test.cfg, &stdout, &stderr)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.Run(strings.NewReader(test.input)); err != nil {
				t.Fatal(err)
			}
			if got := stdout.String(); got != test.want {
				t.Errorf("stdout: got %q, want %q", got, test.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("unexpected stderr output %q", stderr.String())
			}
		})
	}
}

func TestFilterBothOutputs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	f, err := New(Config{Output: Both, Format: "%Y", Now: fixedNow}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Run(strings.NewReader("x\n")); err != nil {
		t.Fatal(err)
	}
	for name, b := range map[string]*bytes.Buffer{"stdout": &stdout, "stderr": &stderr} {
		if got := b.String(); got != "2022 x\n" {
			t.Errorf("%s: got %q", name, got)
		}
	}
}

func TestFilterChunkSize(t *testing.T) {
	var chunks []string
	w := writerFunc(func(p []byte) (int, error) {
		chunks = append(chunks, string(p))
		return len(p), nil
	})
	f, err := New(Config{Output: Stdout, MaxLine: 16, Now: fixedNow}, w, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.Repeat("a", 40) + "\n"
	if err := f.Run(strings.NewReader(line)); err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %q", len(chunks), chunks)
	}
	for _, c := range chunks {
		if len(c) > 16 {
			t.Errorf("chunk %q longer than 16 bytes", c)
		}
	}
	if got := strings.Join(chunks, ""); got != line {
		t.Errorf("got %q", got)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// flakyWriter fails every write listed in fail with EAGAIN.
type flakyWriter struct {
	n    int
	fail map[int]bool
	buf  bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	w.n++
	if w.fail[w.n] {
		return 0, syscall.EAGAIN
	}
	return w.buf.Write(p)
}

func TestWriteErrorPolicy(t *testing.T) {
	input := "one\ntwo\nthree\n"

	t.Run("drop", func(t *testing.T) {
		w := &flakyWriter{fail: map[int]bool{2: true}}
		f, err := New(Config{Output: Stdout, Format: "%Y", WriteError: Drop, Now: fixedNow}, w, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Run(strings.NewReader(input)); err != nil {
			t.Fatal(err)
		}
		if got, want := w.buf.String(), "2022 one\n2022 three\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if f.Dropped() != 1 {
			t.Errorf("dropped %d chunks, want 1", f.Dropped())
		}
	})

	t.Run("drop keeps line start", func(t *testing.T) {
		// The first chunk of a split line is dropped, so the next chunk
		// still gets the prefix.
		w := &flakyWriter{fail: map[int]bool{1: true}}
		f, err := New(Config{Output: Stdout, Format: "%Y", WriteError: Drop, MaxLine: 16, Now: fixedNow}, w, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Run(strings.NewReader(strings.Repeat("a", 16) + "b\n")); err != nil {
			t.Fatal(err)
		}
		if got, want := w.buf.String(), "2022 b\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	for _, policy := range []WriteErrorPolicy{Block, Exit} {
		t.Run(policy.String(), func(t *testing.T) {
			w := &flakyWriter{fail: map[int]bool{2: true}}
			f, err := New(Config{Output: Stdout, WriteError: policy, Now: fixedNow}, w, io.Discard)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.Run(strings.NewReader(input)); !errors.Is(err, syscall.EAGAIN) {
				t.Fatalf("got %v, want EAGAIN", err)
			}
			if got := w.buf.String(); got != "one\n" {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	f, err := New(Config{Output: Stdout, Now: fixedNow}, io.Discard, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	r := io.MultiReader(strings.NewReader("x\n"), errReader{boom})
	if err := f.Run(r); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestConfigValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "defaults", cfg: Config{}, ok: true},
		{name: "both", cfg: Config{Output: Both}, ok: true},
		{name: "output too large", cfg: Config{Output: 4}},
		{name: "negative output", cfg: Config{Output: -1}},
		{name: "tiny max line", cfg: Config{MaxLine: 8}},
		{name: "bad policy", cfg: Config{WriteError: 7}},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.ok != (err == nil) {
				t.Errorf("Validate() = %v, want ok=%v", err, test.ok)
			}
		})
	}
}

func TestParseWriteErrorPolicy(t *testing.T) {
	for s, want := range map[string]WriteErrorPolicy{"block": Block, "drop": Drop, "exit": Exit} {
		got, err := ParseWriteErrorPolicy(s)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", s, got, err)
		}
	}
	if _, err := ParseWriteErrorPolicy("retry"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
