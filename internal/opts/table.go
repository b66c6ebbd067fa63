package opts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/iq-signum/verilator/internal/blockdesc"
	"github.com/iq-signum/verilator/internal/optparse"
	"github.com/iq-signum/verilator/internal/vlang"
)

// buildTable declares the option table. This is the configuration layer:
// each entry routes a resolved value into the option state; the dispatch
// mechanics live in optparse.
func (o *Options) buildTable() *optparse.Table {
	t := optparse.NewTable(o.reporter)

	// Plus options.
	t.Prefix("+define+", func(rest string) { o.addDefine(rest, true) })
	t.Prefix("+incdir+", func(rest string) {
		for _, dir := range strings.Split(rest, "+") {
			o.search.AddUserDir(o.parseFileArg(dir))
		}
	})
	t.Prefix("+libext+", func(rest string) {
		for _, ext := range strings.Split(rest, "+") {
			o.search.AddLibExt(ext)
		}
	})
	t.Call("+librescan", func() {})      // NOP
	t.Call("+notimingchecks", func() {}) // NOP
	langExt := func(code vlang.Code) func(string) {
		return func(rest string) { o.search.AddLangExt(rest, code) }
	}
	t.Prefix("+systemverilogext+", langExt(vlang.V1800_2017))
	t.Prefix("+verilog1995ext+", langExt(vlang.V1364_1995))
	t.Prefix("+verilog2001ext+", langExt(vlang.V1364_2001))
	t.Prefix("+1364-1995ext+", langExt(vlang.V1364_1995))
	t.Prefix("+1364-2001ext+", langExt(vlang.V1364_2001))
	t.Prefix("+1364-2005ext+", langExt(vlang.V1364_2005))
	t.Prefix("+1800-2005ext+", langExt(vlang.V1800_2005))
	t.Prefix("+1800-2009ext+", langExt(vlang.V1800_2009))
	t.Prefix("+1800-2012ext+", langExt(vlang.V1800_2012))
	t.Prefix("+1800-2017ext+", langExt(vlang.V1800_2017))
	t.Prefix("+1800-2023ext+", langExt(vlang.V1800_2023))

	// Minus options.
	t.Flag("-build", &o.build)
	t.Val("-build-jobs", func(val string) {
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			o.reporter.Error(o.curSubject,
				"--build-jobs requires a non-negative integer, but '"+val+"' was passed", "")
			n = 1
		} else if n == 0 {
			n = hardwareConcurrency()
		}
		o.buildJobs = n
	})

	t.Prefix("-D", func(rest string) { o.addDefine(rest, false) })
	t.PrefixVal("-debugi-", func(rest, val string) {
		o.debugLevels[rest], _ = strconv.Atoi(val)
	})
	t.Prefix("-dump-", func(rest string) { o.dumpLevels[rest] = 3 })
	t.Prefix("-no-dump-", func(rest string) { o.dumpLevels[rest] = 0 })
	t.PrefixVal("-dumpi-", func(rest, val string) {
		o.dumpLevels[rest], _ = strconv.Atoi(val)
	})

	t.Toggle("-E", &o.preprocOnly)
	t.IntVal("-error-limit", &o.errorLimit)
	t.Toggle("-exe", &o.exe)

	t.Val("-F", func(val string) { o.parseOptsFileCb(val, false) })
	t.Val("-FI", func(val string) { o.forceIncs = append(o.forceIncs, o.parseFileArg(val)) })
	t.Val("-f", func(val string) { o.parseOptsFileCb(val, true) })
	t.Val("-future0", func(val string) { o.addFuture0(val) })
	t.Val("-future1", func(val string) { o.addFuture1(val) })

	t.Prefix("-G", func(rest string) { o.addParameter(rest) })

	t.Toggle("-hierarchical", &o.hier)
	t.Val("-hierarchical-block", func(val string) {
		b := blockdesc.Parse("--hierarchical-block", val, o.reporter)
		o.hierBlocks[b.MangledName] = b
	})

	t.Prefix("-I", func(rest string) { o.search.AddUserDir(o.parseFileArg(rest)) })

	setLang := func(val string) {
		code := vlang.FromString(val)
		if !code.Legal() {
			o.reporter.Error(o.curSubject,
				"Unknown language specified: "+val, languageSuggestion(val))
			return
		}
		o.search.SetDefaultLanguage(code)
	}
	t.Val("-default-language", setLang)
	t.Val("-language", setLang)
	t.Val("-lib-create", func(val string) {
		o.validateIdentifier(val, "--lib-create")
		o.libCreate = val
	})
	t.StrVal("-log-format", &o.logFormat)
	t.StrVal("-log-level", &o.logLevel)

	t.Val("-Mdir", func(val string) {
		o.makeDir = val
		o.search.AddFallbackDir(o.makeDir) // generated files land there too
	})
	t.Toggle("-main", &o.mainGen)
	t.Val("-mod-prefix", func(val string) {
		o.validateIdentifier(val, "--mod-prefix")
		o.modPrefix = val
	})

	t.StrVal("-o", &o.exeName)
	t.Val("-output-groups", func(val string) {
		n, err := strconv.Atoi(val)
		if err != nil || n < -1 {
			o.reporter.Error(o.curSubject, "--output-groups must be >= -1: "+val, "")
			return
		}
		o.outputGroups = n
	})

	t.Val("-prefix", func(val string) {
		o.validateIdentifier(val, "--prefix")
		o.prefix = val
	})

	t.Val("-protect-key", func(val string) { o.SetProtectKey(val) })

	t.OnOff("-relative-includes", func(on bool) { o.search.SetRelativeIncludes(on) })

	t.StrVal("-top-module", &o.topModule)

	t.Flag("-version", &o.wantVersion)
	t.Flag("-help", &o.wantHelp)

	t.Prefix("-Wfuture-", func(rest string) { o.addFuture(rest) })

	t.Val("-y", func(val string) { o.search.AddUserDir(o.parseFileArg(val)) })

	return t
}

// parseOptsFileCb routes -f/-F through the loader, latching any fatal error
// raised while the file's tokens were consumed.
func (o *Options) parseOptsFileCb(val string, rel bool) {
	if err := o.loader.Load(o.curCtx, o.curSubject, o.parseFileArg(val), rel); err != nil {
		if o.pendingErr == nil {
			o.pendingErr = err
		}
	}
}

// validateIdentifier reports option arguments that are not legal C
// identifiers, since they end up in generated code.
func (o *Options) validateIdentifier(arg, opt string) {
	ok := arg != ""
	for i := 0; i < len(arg) && ok; i++ {
		c := arg[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			ok = i > 0
		default:
			ok = false
		}
	}
	if !ok {
		o.reporter.Error(o.curSubject,
			opt+" argument must be a legal C++ identifier: '"+arg+"'", "")
	}
}

// languageSuggestion ranks the known language standards against an
// unrecognized name.
func languageSuggestion(word string) string {
	type scored struct {
		name string
		dist int
	}
	var close []scored
	for _, c := range vlang.All() {
		close = append(close, scored{c.String(), levenshtein.Distance(word, c.String(), nil)})
	}
	sort.SliceStable(close, func(i, j int) bool { return close[i].dist < close[j].dist })
	if len(close) == 0 || close[0].dist > 3 {
		return ""
	}
	return "... Suggest '" + close[0].name + "'"
}
