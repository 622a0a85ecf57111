// Command starkctl exposes the STARK-curve primitives on the command line.
// Field elements are read and written as hex strings.
package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/f3rmion/stark"
)

type config struct {
	Verbose bool
	Hedged  bool
}

var log = newLogger(false)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, out io.Writer) int {
	if err := newApp(out).Run(args); err != nil {
		code := exitCode(err)
		log.Error("command failed", "err", err, "status", stark.Status(code))
		return code
	}
	return int(stark.Success)
}

// exitCode maps err to a process exit code. Library errors exit with their
// status value.
func exitCode(err error) int {
	var ce cli.ExitCoder
	if errors.As(err, &ce) {
		return ce.ExitCode()
	}
	return int(stark.StatusOf(err))
}

func newApp(out io.Writer) *cli.App {
	cfg := &config{}
	return &cli.App{
		Name:  "starkctl",
		Usage: "STARK curve field arithmetic, hashes and signatures",
		Authors: []*cli.Author{
			{Name: "f3rmion"},
		},
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       os.Stderr,
		// run logs the error and picks the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Log debug output to stderr",
				EnvVars:     []string{"STARKCTL_VERBOSE"},
				Destination: &cfg.Verbose,
			},
		},
		Before: func(c *cli.Context) error {
			log = newLogger(cfg.Verbose)
			return nil
		},
		Commands: commands(cfg),
	}
}
