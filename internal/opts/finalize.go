package opts

import (
	"strings"

	"github.com/iq-signum/verilator/internal/pathutil"
)

// Finalize marks the end of option processing: remaining defaults are
// filled in and the state transitions to read-only. Must be called exactly
// once, after the last ParseArgs. Semantic cross-validation of option
// combinations belongs to later stages that consume the resolved values.
func (o *Options) Finalize() {
	o.mutable()

	// Default the output prefix from the top module or the first source.
	if o.prefix == "" && o.topModule != "" {
		o.prefix = "V" + encodeIdent(o.topModule)
	}
	if o.prefix == "" && len(o.vFiles) > 0 {
		o.prefix = "V" + encodeIdent(pathutil.StripExt(o.vFiles[0]))
	}
	if o.modPrefix == "" {
		o.modPrefix = o.prefix
	}

	// Generated files land in the make directory, so resolution must find
	// them there too.
	o.search.AddFallbackDir(o.makeDir)

	if o.outputGroups == unset {
		if o.buildJobs != unset {
			o.outputGroups = o.buildJobs
		} else {
			o.outputGroups = 0
		}
	}
	if o.buildJobs == unset {
		o.buildJobs = 1
	}
	if o.verilateJobs == unset {
		o.verilateJobs = 1
	}

	// Leave last: the state is now readable by concurrent stages.
	o.available = true
}

// encodeIdent maps an arbitrary name onto a legal identifier for generated
// code, replacing every illegal character with an underscore.
func encodeIdent(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		legal := c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9' && i > 0)
		if legal {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
