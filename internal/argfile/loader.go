package argfile

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2"

	"github.com/iq-signum/verilator/internal/ctxlog"
	"github.com/iq-signum/verilator/internal/diag"
	"github.com/iq-signum/verilator/internal/pathutil"
)

// Dispatch re-enters option processing with the tokens lexed from an
// included file. subject names the file for diagnostics raised while the
// tokens are consumed; optdir is the directory against which relative path
// arguments inside the file resolve.
type Dispatch func(ctx context.Context, subject *hcl.Range, optdir string, args []string) error

// Loader expands -f/-F argument-file inclusions. It is re-entrant: dispatch
// may call Load again for nested inclusions. A set of in-progress files
// guards against a file including itself, directly or transitively.
type Loader struct {
	reporter *diag.Reporter
	dispatch Dispatch
	loading  map[string]struct{}
}

// NewLoader creates a Loader reporting through r and re-entering option
// processing through dispatch.
func NewLoader(r *diag.Reporter, dispatch Dispatch) *Loader {
	return &Loader{
		reporter: r,
		dispatch: dispatch,
		loading:  make(map[string]struct{}),
	}
}

// Load reads the argument file at path, lexes it, and dispatches the
// resulting tokens. When rel is true, relative paths inside the file resolve
// against the file's own directory; otherwise against the invocation
// directory. A file that cannot be opened is reported and skipped; outer
// processing continues. Only a fatal condition inside dispatch returns a
// non-nil error.
func (l *Loader) Load(ctx context.Context, subject *hcl.Range, path string, rel bool) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading options file.", "path", path)

	key := pathutil.Clean(path)
	if _, busy := l.loading[key]; busy {
		l.reporter.Error(subject, "Recursive -f command file inclusion: "+path,
			"The file is already being processed further up the inclusion chain.")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.reporter.Error(subject, "Cannot open -f command file: "+path, "")
		return nil
	}

	l.loading[key] = struct{}{}
	defer delete(l.loading, key)

	words, unterminated := Lex(string(data))
	if unterminated {
		l.reporter.Error(diag.FileRange(path), "Unterminated /* comment inside -f file.", "")
	}

	optdir := "."
	if rel {
		optdir = pathutil.Dir(path)
	}
	logger.Debug("Options file lexed.", "path", path, "tokens", len(words), "optdir", optdir)
	return l.dispatch(ctx, diag.FileRange(path), optdir, words)
}
