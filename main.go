package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/tscat/tscat/internal/tscat"
	"github.com/tscat/tscat/sandbox"
)

const version = "0.3.0"

const usage = `Timestamp stdin to stdout/stderr

tscat reads lines from stdin and writes them to stdout, stderr or both,
each prefixed with a strftime(3) timestamp and an optional label.

Before reading input, tscat restricts itself so that a hostile stream can
only make it read stdin and write its outputs. This binary is using %s
mode process restriction.`

// Replaced by tests.
var (
	restrictInit  = sandbox.Init
	restrictStdin = sandbox.LockdownStdin

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	// time.Local is loaded from /etc/localtime on first use, which is
	// impossible once the process is restricted.
	time.Now().Zone()

	app := newApp()

	// If the command returns an error, cli takes upon itself to print
	// the error on cli.ErrWriter and exit.
	// Use our own writer here to ensure the log gets sent to the right location.
	cli.ErrWriter = &FatalWriter{}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tscat"
	app.Usage = fmt.Sprintf(usage, sandbox.Active)
	app.ArgsUsage = "[<LABEL>]"
	app.Writer = stdout
	app.ErrWriter = stderr

	v := []string{
		version,
		"sandbox: " + sandbox.Active.String(),
		"runtime-spec: " + specs.Version,
		"go: " + runtime.Version(),
	}
	app.Version = strings.Join(v, "\n")

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "output, o",
			Value: int(tscat.Stdout),
			Usage: "stdout=1, stderr=2, both=3",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: tscat.DefaultFormat,
			Usage: "timestamp format (see strftime(3)); empty disables the timestamp",
		},
		cli.StringFlag{
			Name:  "write-error, W",
			Value: tscat.Block.String(),
			Usage: "behaviour if an output would block ('block', 'drop' or 'exit')",
		},
		cli.StringFlag{
			Name:  "max-line",
			Value: units.BytesSize(tscat.DefaultMaxLine),
			Usage: "split lines longer than this many bytes",
		},
		cli.BoolFlag{
			Name:  "print-policy",
			Usage: "print the restrictions compiled into this binary as JSON and exit",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: "text",
			Usage: "set the log format ('text' (default), or 'json')",
		},
	}
	app.Before = configLogrus
	app.Action = run
	return app
}

func run(context *cli.Context) error {
	if err := checkArgs(context, 1, maxArgs); err != nil {
		return cli.NewExitError(err, 2)
	}
	cfg, err := parseConfig(context)
	if err != nil {
		return cli.NewExitError(err, 2)
	}

	if context.Bool("print-policy") {
		return printPolicy(context.App.Writer)
	}

	if err := restrictInit(); err != nil {
		return err
	}

	out, errOut := stdout, stderr
	if cfg.WriteError != tscat.Block {
		if out, errOut, err = nonblockingOutputs(cfg.Output); err != nil {
			return err
		}
	}
	filter, err := tscat.New(cfg, out, errOut)
	if err != nil {
		return err
	}
	logrus.Debugf("output %d, format %q, label %q, write error %s, max line %s",
		cfg.Output, cfg.Format, cfg.Label, cfg.WriteError, units.BytesSize(float64(cfg.MaxLine)))

	if err := restrictStdin(); err != nil {
		return err
	}
	if err := filter.Run(stdin); err != nil {
		return fmt.Errorf("tscatin: %w", err)
	}
	return nil
}

func parseConfig(context *cli.Context) (tscat.Config, error) {
	cfg := tscat.Config{
		Output: tscat.Stream(context.Int("output")),
		Format: context.String("format"),
		Label:  context.Args().First(),
	}
	var err error
	if cfg.WriteError, err = tscat.ParseWriteErrorPolicy(context.String("write-error")); err != nil {
		return cfg, err
	}
	maxLine, err := units.RAMInBytes(context.String("max-line"))
	if err != nil {
		return cfg, fmt.Errorf("invalid max-line: %w", err)
	}
	if maxLine > 1<<30 {
		return cfg, fmt.Errorf("invalid max-line: %s is larger than 1GiB", context.String("max-line"))
	}
	cfg.MaxLine = int(maxLine)
	return cfg, cfg.Validate()
}

// nonblockingOutputs switches the selected outputs to non-blocking mode and
// returns writers that report EAGAIN instead of waiting.
func nonblockingOutputs(output tscat.Stream) (io.Writer, io.Writer, error) {
	out := tscat.FDWriter{Fd: 1, Name: "/dev/stdout"}
	errOut := tscat.FDWriter{Fd: 2, Name: "/dev/stderr"}
	if output&tscat.Stdout != 0 {
		if err := tscat.SetNonblock(out.Fd); err != nil {
			return nil, nil, err
		}
	}
	if output&tscat.Stderr != 0 {
		if err := tscat.SetNonblock(errOut.Fd); err != nil {
			return nil, nil, err
		}
	}
	return out, errOut, nil
}

func printPolicy(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(sandbox.Describe())
}

// FatalWriter sends the errors urfave/cli prints through logrus.
type FatalWriter struct{}

func (f *FatalWriter) Write(p []byte) (n int, err error) {
	logrus.Error(string(p))
	return len(p), nil
}

func configLogrus(context *cli.Context) error {
	if context.GlobalBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetReportCaller(true)
		// Shorten function and file names reported by the logger, by
		// trimming common "github.com/tscat/tscat" prefix.
		// This is only done for text formatter.
		_, file, _, _ := runtime.Caller(0)
		prefix := filepath.Dir(file) + "/"
		logrus.SetFormatter(&logrus.TextFormatter{
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				function := strings.TrimPrefix(f.Function, prefix) + "()"
				fileLine := strings.TrimPrefix(f.File, prefix) + ":" + strconv.Itoa(f.Line)
				return function, fileLine
			},
		})
	}

	switch f := context.GlobalString("log-format"); f {
	case "", "text":
		// do nothing
	case "json":
		logrus.SetFormatter(new(logrus.JSONFormatter))
	default:
		return errors.New("invalid log-format: " + f)
	}
	return nil
}
