package diag

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
)

// CommandLineFilename is the synthetic source name used for diagnostics that
// originate from the command line rather than an argument file.
const CommandLineFilename = "<command line>"

// CommandLine returns the synthetic subject range for command-line sourced
// diagnostics.
func CommandLine() *hcl.Range {
	return &hcl.Range{Filename: CommandLineFilename}
}

// FileRange returns a subject range naming an argument file. Argument files
// are lexed as a whole, so no line/column detail is attached.
func FileRange(name string) *hcl.Range {
	return &hcl.Range{Filename: name}
}

// Reporter accumulates diagnostics over one compiler invocation. It has a
// single writer during option processing and is read out once at the end.
type Reporter struct {
	diags hcl.Diagnostics
}

// NewReporter creates an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Error records a non-fatal error diagnostic.
func (r *Reporter) Error(subject *hcl.Range, summary, detail string) {
	r.diags = r.diags.Append(&hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject,
	})
}

// Errf records a non-fatal error diagnostic with a formatted summary.
func (r *Reporter) Errf(subject *hcl.Range, format string, args ...any) {
	r.Error(subject, fmt.Sprintf(format, args...), "")
}

// Warn records a warning diagnostic.
func (r *Reporter) Warn(subject *hcl.Range, summary, detail string) {
	r.diags = r.diags.Append(&hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject,
	})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	return r.diags.HasErrors()
}

// All returns every diagnostic recorded so far, in recording order.
func (r *Reporter) All() hcl.Diagnostics {
	return r.diags
}

// Write renders every accumulated diagnostic to w, one per line.
func (r *Reporter) Write(w io.Writer) error {
	for _, d := range r.diags {
		prefix := "Error"
		if d.Severity == hcl.DiagWarning {
			prefix = "Warning"
		}
		where := ""
		if d.Subject != nil && d.Subject.Filename != "" {
			where = d.Subject.Filename + ": "
		}
		line := fmt.Sprintf("%%%s: %s%s", prefix, where, d.Summary)
		if d.Detail != "" {
			line += "\n" + d.Detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
