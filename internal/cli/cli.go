package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/iq-signum/verilator/internal/ctxlog"
	"github.com/iq-signum/verilator/internal/diag"
	"github.com/iq-signum/verilator/internal/opts"
)

// version string reported by --version.
const version = "verilator-go 0.9.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `Verilator HDL compiler option front end.

Usage:
  verilator [options] [sources...]

Common options:
  -f <file>            Parse options from a file, relative paths against its directory
  -F <file>            Parse options from a file, relative paths against the invocation directory
  -I<dir> / +incdir+<dir>  Add a directory to the module search path
  +libext+<ext>        Add a library filename extension to try during lookup
  -j [N]               Parallelism; 0 or omitted uses the detected hardware concurrency
  -top-module <name>   Name of the top design unit
  --version            Print version and exit
  --help               Print this text and exit
`

// Parse processes command-line arguments into a finalized option state. It
// returns the options, a boolean indicating a clean early exit (--help,
// --version), or an ExitError.
func Parse(ctx context.Context, args []string, outW io.Writer) (*opts.Options, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Option front end started.", "args", len(args))

	reporter := diag.NewReporter()
	o := opts.New(reporter)

	ctx = ctxlog.With(ctx, "component", "options")
	if err := o.ParseArgs(ctx, args); err != nil {
		_ = reporter.Write(outW)
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if o.WantVersion() {
		fmt.Fprintln(outW, version)
		return nil, true, nil
	}
	if o.WantHelp() {
		fmt.Fprint(outW, usage)
		return nil, true, nil
	}

	o.Finalize()
	logger.Debug("Option state finalized.",
		"sources", len(o.VFiles()), "build_jobs", o.BuildJobs())

	_ = reporter.Write(outW)
	if reporter.HasErrors() {
		return nil, false, &ExitError{Code: 1, Message: "Exiting due to errors"}
	}

	if !o.HasInputFiles() {
		return nil, false, &ExitError{Code: 1, Message: "verilator: No Input Verilog file " +
			"specified on command line, see verilator --help for more information"}
	}

	return o, false, nil
}
