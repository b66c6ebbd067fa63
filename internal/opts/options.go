package opts

import (
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2"

	"github.com/iq-signum/verilator/internal/argfile"
	"github.com/iq-signum/verilator/internal/blockdesc"
	"github.com/iq-signum/verilator/internal/diag"
	"github.com/iq-signum/verilator/internal/optparse"
	"github.com/iq-signum/verilator/internal/pathsearch"
	"github.com/iq-signum/verilator/internal/vlang"
)

// unset marks a numeric setting not yet given on the command line, so later
// defaulting (and -j seeding) can tell explicit values apart.
const unset = -1

// Define is one preprocessor define from +define+ or -D, in encounter order.
type Define struct {
	Name  string
	Value string
}

// Options is the full resolved option state of one invocation. It has
// exactly one writer until Finalize marks it read-only.
type Options struct {
	reporter *diag.Reporter
	search   *pathsearch.SearchPath
	table    *optparse.Table
	loader   *argfile.Loader

	// Current dispatch context; saved and restored around nested
	// argument-file inclusion. curCtx carries the logger into option
	// callbacks that re-enter the loader.
	curSubject *hcl.Range
	curOptdir  string
	curCtx     context.Context
	pendingErr error

	lineArgs []string // arguments given directly on the command line
	allArgs  []string // every argument encountered, -f expansions included

	defines    []Define
	parameters map[string]string

	future0s map[string]struct{}
	future1s map[string]struct{}
	futures  map[string]struct{}

	vFiles    []string // HDL sources
	cppFiles  []string // compiled sources
	ldLibs    []string // linker artifacts
	vltFiles  []string // pre-resolved design units
	forceIncs []string

	buildJobs    int
	verilateJobs int
	outputGroups int
	errorLimit   int

	makeDir     string
	topModule   string
	prefix      string
	modPrefix   string
	exeName     string
	libCreate   string
	build       bool
	exe         bool
	mainGen     bool
	hier        bool
	preprocOnly bool

	wantVersion bool
	wantHelp    bool
	logLevel    string
	logFormat   string

	hierBlocks  map[string]*blockdesc.Block
	debugLevels map[string]int
	dumpLevels  map[string]int

	// protectKey is generated lazily and may be requested from multiple
	// goroutines after finalization; mu guards the check-and-set only.
	mu            sync.Mutex
	protectKey    string
	protectKeyGen func() string

	available bool
}

// New creates the option state with built-in defaults: library extensions
// "", ".v", ".sv" so a full filename matches as-is, and "." as a fallback
// include directory.
func New(r *diag.Reporter) *Options {
	o := &Options{
		reporter:     r,
		search:       pathsearch.New(r),
		parameters:   make(map[string]string),
		future0s:     make(map[string]struct{}),
		future1s:     make(map[string]struct{}),
		futures:      make(map[string]struct{}),
		hierBlocks:   make(map[string]*blockdesc.Block),
		debugLevels:  make(map[string]int),
		dumpLevels:   make(map[string]int),
		buildJobs:    unset,
		verilateJobs: unset,
		outputGroups: unset,
		errorLimit:   50,
		makeDir:      "obj_dir",
		curOptdir:    ".",
		logLevel:     "info",
		logFormat:    "text",
	}
	o.protectKeyGen = defaultProtectKeyGen
	o.search.AddLibExt("")
	o.search.AddLibExt(".v")
	o.search.AddLibExt(".sv")
	o.search.AddFallbackDir(".")
	o.table = o.buildTable()
	o.table.Finalize()
	o.loader = argfile.NewLoader(r, o.dispatchFile)
	return o
}

// Reporter returns the diagnostic reporter shared by all stages.
func (o *Options) Reporter() *diag.Reporter { return o.reporter }

// Search returns the search-path resolver populated during dispatch.
func (o *Options) Search() *pathsearch.SearchPath { return o.search }

// FilePath resolves a module name to a source file via the search path; see
// pathsearch.SearchPath.Resolve.
func (o *Options) FilePath(subject *hcl.Range, modname, lastPath, errPrefix string) string {
	return o.search.Resolve(subject, modname, lastPath, errPrefix)
}

func (o *Options) mutable() {
	if o.available {
		panic("opts: mutation after Finalize")
	}
}

// addDefine splits "+define+A=B" style text into defines. allowPlus permits
// several +-joined defines in one token; + is not quotable.
func (o *Options) addDefine(defline string, allowPlus bool) {
	o.mutable()
	left := defline
	for left != "" {
		def := left
		if allowPlus {
			if pos := strings.IndexByte(left, '+'); pos >= 0 {
				def = left[:pos]
				left = left[pos+1:]
			} else {
				left = ""
			}
		} else {
			left = ""
		}
		value := ""
		if pos := strings.IndexByte(def, '='); pos >= 0 {
			value = def[pos+1:]
			def = def[:pos]
		}
		o.defines = append(o.defines, Define{Name: def, Value: value})
	}
}

// addParameter records a -G parameter override; re-registration replaces.
func (o *Options) addParameter(paramline string) {
	o.mutable()
	name := paramline
	value := ""
	if pos := strings.IndexByte(paramline, '='); pos >= 0 {
		value = paramline[pos+1:]
		name = paramline[:pos]
	}
	o.parameters[name] = value
}

func (o *Options) addFuture(flag string)  { o.futures[flag] = struct{}{} }
func (o *Options) addFuture0(flag string) { o.future0s[flag] = struct{}{} }
func (o *Options) addFuture1(flag string) { o.future1s[flag] = struct{}{} }

func (o *Options) isFuture0(flag string) bool {
	_, ok := o.future0s[flag]
	return ok
}

func (o *Options) isFuture1(flag string) bool {
	_, ok := o.future1s[flag]
	return ok
}

// IsFuture reports whether flag was reserved via -Wfuture-.
func (o *Options) IsFuture(flag string) bool {
	_, ok := o.futures[flag]
	return ok
}

// Accessors for later compiler stages. Valid for concurrent use once
// Available reports true.

func (o *Options) Available() bool               { return o.available }
func (o *Options) Defines() []Define             { return o.defines }
func (o *Options) Parameters() map[string]string { return o.parameters }
func (o *Options) VFiles() []string              { return o.vFiles }
func (o *Options) CppFiles() []string            { return o.cppFiles }
func (o *Options) LdLibs() []string              { return o.ldLibs }
func (o *Options) VltFiles() []string            { return o.vltFiles }
func (o *Options) ForceIncs() []string           { return o.forceIncs }
func (o *Options) BuildJobs() int                { return o.buildJobs }
func (o *Options) VerilateJobs() int             { return o.verilateJobs }
func (o *Options) OutputGroups() int             { return o.outputGroups }
func (o *Options) ErrorLimit() int               { return o.errorLimit }
func (o *Options) MakeDir() string               { return o.makeDir }
func (o *Options) TopModule() string             { return o.topModule }
func (o *Options) Prefix() string                { return o.prefix }
func (o *Options) ModPrefix() string             { return o.modPrefix }
func (o *Options) ExeName() string               { return o.exeName }
func (o *Options) LibCreate() string             { return o.libCreate }
func (o *Options) Build() bool                   { return o.build }
func (o *Options) Exe() bool                     { return o.exe }
func (o *Options) Main() bool                    { return o.mainGen }
func (o *Options) Hierarchical() bool            { return o.hier }
func (o *Options) PreprocOnly() bool             { return o.preprocOnly }
func (o *Options) WantVersion() bool             { return o.wantVersion }
func (o *Options) WantHelp() bool                { return o.wantHelp }
func (o *Options) LogLevel() string              { return o.logLevel }
func (o *Options) LogFormat() string             { return o.logFormat }

// HierBlock returns the block descriptor registered under a mangled name.
func (o *Options) HierBlock(mangled string) (*blockdesc.Block, bool) {
	b, ok := o.hierBlocks[mangled]
	return b, ok
}

// HasInputFiles reports whether any HDL source was named.
func (o *Options) HasInputFiles() bool { return len(o.vFiles) > 0 }

// FileLanguage classifies a filename's language standard by extension.
func (o *Options) FileLanguage(filename string) vlang.Code {
	return o.search.FileLanguage(filename)
}

// AllArgsString returns every argument encountered, -f expansions included,
// joined by single spaces.
func (o *Options) AllArgsString() string {
	return strings.Join(o.allArgs, " ")
}
