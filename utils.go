package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	exactArgs = iota
	minArgs
	maxArgs
)

func checkArgs(context *cli.Context, expected, checkType int) error {
	var err error
	switch checkType {
	case exactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: requires exactly %d argument(s)", context.App.Name, expected)
		}
	case minArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: requires a minimum of %d argument(s)", context.App.Name, expected)
		}
	case maxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: requires a maximum of %d argument(s)", context.App.Name, expected)
		}
	}

	if err != nil {
		fmt.Fprintf(context.App.Writer, "Incorrect Usage.\n\n")
		_ = cli.ShowAppHelp(context)
		return err
	}
	return nil
}

// fatal prints the error and exits the program with an exit status of 1.
func fatal(err error) {
	// make sure the error is written to the logger
	logrus.Debugf("%+v", err)
	fmt.Fprintln(os.Stderr, "tscat:", err)
	os.Exit(1)
}
