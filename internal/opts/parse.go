package opts

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/iq-signum/verilator/internal/ctxlog"
	"github.com/iq-signum/verilator/internal/diag"
	"github.com/iq-signum/verilator/internal/pathutil"
)

// ParseArgs consumes the command line. args does not include the program
// name. The returned error is fatal (unknown option); every other problem
// accumulates in the reporter and processing continues.
func (o *Options) ParseArgs(ctx context.Context, args []string) error {
	o.mutable()
	o.lineArgs = append(o.lineArgs, args...)
	return o.parseArgsList(ctx, diag.CommandLine(), ".", args)
}

// parseArgsList is the token loop. It is re-entered for every -f/-F
// inclusion with that file's own subject range and directory context.
func (o *Options) parseArgsList(ctx context.Context, subject *hcl.Range, optdir string, args []string) error {
	logger := ctxlog.FromContext(ctx)
	o.allArgs = append(o.allArgs, args...)

	prevSubject, prevOptdir, prevCtx := o.curSubject, o.curOptdir, o.curCtx
	o.curSubject, o.curOptdir, o.curCtx = subject, optdir, ctx
	defer func() {
		o.curSubject, o.curOptdir, o.curCtx = prevSubject, prevOptdir, prevCtx
	}()

	for i := 0; i < len(args); {
		token := args[i]
		logger.Debug("Option.", "arg", token)

		switch {
		case token == "-j" || token == "--j":
			// Parallelism shorthand, recognized ahead of table lookup. It
			// seeds the dependent job settings unless those were set
			// explicitly elsewhere.
			i++
			val := hardwareConcurrency()
			if i < len(args) && isAllDigits(args[i]) {
				val, _ = strconv.Atoi(args[i])
				if val == 0 {
					val = hardwareConcurrency()
				}
				i++
			}
			if o.buildJobs == unset {
				o.buildJobs = val
			}
			if o.verilateJobs == unset {
				o.verilateJobs = val
			}
			if o.outputGroups == unset {
				o.outputGroups = val
			}
		case strings.HasPrefix(token, "-") || strings.HasPrefix(token, "+"):
			noDash := token[1:]
			if strings.HasPrefix(token, "--") {
				noDash = token[2:]
			}
			if consumed := o.table.Parse(subject, i, args); consumed != 0 {
				i += consumed
				if o.pendingErr != nil {
					err := o.pendingErr
					o.pendingErr = nil
					return err
				}
			} else if o.isFuture0(noDash) {
				i++
			} else if o.isFuture1(noDash) {
				i += 2
			} else {
				hint := o.table.SuggestionMsg(token)
				o.reporter.Error(subject, "Invalid option: "+token, hint)
				msg := "Invalid option: " + token
				if hint != "" {
					msg += "\n" + hint
				}
				return fmt.Errorf("%s", msg)
			}
		default:
			o.addInputFile(o.parseFileArg(token))
			i++
		}
	}
	return nil
}

// addInputFile classifies a bare token by suffix into the compiled-source,
// linker-artifact, pre-resolved design unit, or HDL source bucket.
func (o *Options) addInputFile(filename string) {
	switch {
	case pathutil.HasSuffix(filename, ".cpp"),
		pathutil.HasSuffix(filename, ".cxx"),
		pathutil.HasSuffix(filename, ".cc"),
		pathutil.HasSuffix(filename, ".c"),
		pathutil.HasSuffix(filename, ".sp"):
		o.cppFiles = append(o.cppFiles, filename)
	case pathutil.HasSuffix(filename, ".a"),
		pathutil.HasSuffix(filename, ".o"),
		pathutil.HasSuffix(filename, ".so"):
		o.ldLibs = append(o.ldLibs, filename)
	case pathutil.HasSuffix(filename, ".vlt"):
		o.vltFiles = append(o.vltFiles, filename)
	default:
		o.vFiles = append(o.vFiles, filename)
	}
}

// parseFileArg expands environment references in a path argument and
// resolves it against the current directory context.
func (o *Options) parseFileArg(relfilename string) string {
	filename := pathutil.Substitute(relfilename)
	if o.curOptdir != "." && !pathutil.IsAbs(filename) {
		filename = pathutil.Join(o.curOptdir, filename)
	}
	return filename
}

// dispatchFile is the loader's re-entry point into the token loop.
func (o *Options) dispatchFile(ctx context.Context, subject *hcl.Range, optdir string, args []string) error {
	return o.parseArgsList(ctx, subject, optdir, args)
}

// hardwareConcurrency is the detected parallelism used when a job count of
// 0 is requested.
func hardwareConcurrency() int {
	return runtime.NumCPU()
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
