package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iq-signum/verilator/internal/cli"
	"github.com/iq-signum/verilator/internal/ctxlog"
)

// main is the entrypoint for the option front end.
func main() {
	// Minimal logger until the configured one is built after parsing.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the front-end logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	ctx := context.Background()

	o, shouldExit, err := cli.Parse(ctx, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Rebuild the logger per the resolved options for the later stages.
	logger := cli.NewLogger(o.LogLevel(), o.LogFormat(), os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	ctxlog.FromContext(ctx).Info("Options resolved.",
		"sources", len(o.VFiles()),
		"prefix", o.Prefix(),
		"build_jobs", o.BuildJobs(),
	)
	return nil
}
