package pathsearch

import (
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/iq-signum/verilator/internal/diag"
	"github.com/iq-signum/verilator/internal/pathutil"
	"github.com/iq-signum/verilator/internal/vlang"
)

// longNameThreshold is the module-name length beyond which automatic file
// lookup becomes unreliable due to OS filename length limits.
const longNameThreshold = 127

// SearchPath holds the ordered include-directory lists, the library
// extension list, and the extension-to-language map. User directories always
// outrank fallback directories; within each list insertion order is the
// search order and duplicates are dropped on first occurrence.
type SearchPath struct {
	reporter *diag.Reporter
	cache    *DirCache

	userDirs     []string
	userSet      map[string]struct{}
	fallbackDirs []string
	fallbackSet  map[string]struct{}

	libExts   []string
	libExtSet map[string]struct{}

	langExts        map[string]vlang.Code
	defaultLanguage vlang.Code

	relativeIncludes  bool
	notFoundHintShown bool
}

// New creates a SearchPath reporting lookup failures through r.
func New(r *diag.Reporter) *SearchPath {
	return &SearchPath{
		reporter:        r,
		cache:           NewDirCache(),
		userSet:         make(map[string]struct{}),
		fallbackSet:     make(map[string]struct{}),
		libExtSet:       make(map[string]struct{}),
		langExts:        make(map[string]vlang.Code),
		defaultLanguage: vlang.MostRecent(),
	}
}

// AddUserDir registers a user include directory. A path already registered
// as a fallback moves to the user list; user registration has priority.
func (s *SearchPath) AddUserDir(incdir string) {
	dir := pathutil.Clean(incdir)
	if _, seen := s.userSet[dir]; seen {
		return
	}
	s.userSet[dir] = struct{}{}
	s.userDirs = append(s.userDirs, dir)
	if _, inFallback := s.fallbackSet[dir]; inFallback {
		delete(s.fallbackSet, dir)
		for i, d := range s.fallbackDirs {
			if d == dir {
				s.fallbackDirs = append(s.fallbackDirs[:i], s.fallbackDirs[i+1:]...)
				break
			}
		}
	}
}

// AddFallbackDir registers a lower-priority include directory, searched only
// after every user directory. A path already present in the user list is
// ignored.
func (s *SearchPath) AddFallbackDir(incdir string) {
	dir := pathutil.Clean(incdir)
	if _, inUser := s.userSet[dir]; inUser {
		return
	}
	if _, seen := s.fallbackSet[dir]; seen {
		return
	}
	s.fallbackSet[dir] = struct{}{}
	s.fallbackDirs = append(s.fallbackDirs, dir)
}

// AddLibExt registers a library extension tried when resolving a bare module
// name. The empty extension allows a full filename to match as-is.
// Duplicates keep their first-seen position.
func (s *SearchPath) AddLibExt(ext string) {
	if _, seen := s.libExtSet[ext]; seen {
		return
	}
	s.libExtSet[ext] = struct{}{}
	s.libExts = append(s.libExts, ext)
}

// AddLangExt maps a filename extension to a language standard. A new
// registration for the same extension replaces the previous one.
func (s *SearchPath) AddLangExt(ext string, code vlang.Code) {
	s.langExts[strings.TrimPrefix(ext, ".")] = code
}

// SetDefaultLanguage sets the language used for unregistered extensions.
func (s *SearchPath) SetDefaultLanguage(code vlang.Code) { s.defaultLanguage = code }

// DefaultLanguage returns the language used for unregistered extensions.
func (s *SearchPath) DefaultLanguage() vlang.Code { return s.defaultLanguage }

// SetRelativeIncludes controls whether Resolve also tries the including
// file's own directory as a last resort.
func (s *SearchPath) SetRelativeIncludes(on bool) { s.relativeIncludes = on }

// RelativeIncludes reports whether relative-include resolution is enabled.
func (s *SearchPath) RelativeIncludes() bool { return s.relativeIncludes }

// UserDirs returns the user include directories in search order.
func (s *SearchPath) UserDirs() []string { return s.userDirs }

// FallbackDirs returns the fallback include directories in search order.
func (s *SearchPath) FallbackDirs() []string { return s.fallbackDirs }

// LibExts returns the library extensions in registration order.
func (s *SearchPath) LibExts() []string { return s.libExts }

// FileLanguage determines the language standard for a filename from its
// extension, falling back to the default language.
func (s *SearchPath) FileLanguage(filename string) vlang.Code {
	base := pathutil.Base(filename)
	if pos := strings.LastIndexByte(base, '.'); pos >= 0 {
		if code, ok := s.langExts[base[pos+1:]]; ok {
			return code
		}
	}
	return s.defaultLanguage
}

// checkOneDir probes dir for name under every registered extension, in
// registration order, returning the first existing regular file.
func (s *SearchPath) checkOneDir(name, dir string) string {
	for _, ext := range s.libExts {
		if found := s.cache.Lookup(pathutil.Join(dir, name+ext)); found != "" {
			return found
		}
	}
	return ""
}

// Resolve finds the file providing the named module. An absolute name is
// probed directly; otherwise user directories are tried in insertion order,
// then fallback directories, then lastPath when relative includes are
// enabled. On a miss the result is "" — silently when errPrefix is empty,
// otherwise with a diagnostic enumerating every candidate tried.
func (s *SearchPath) Resolve(subject *hcl.Range, modname, lastPath, errPrefix string) string {
	filename := pathutil.Clean(modname)
	if pathutil.IsAbs(filename) {
		if found := s.checkOneDir(filename, ""); found != "" {
			return found
		}
	}
	for _, dir := range s.userDirs {
		if found := s.checkOneDir(filename, dir); found != "" {
			return found
		}
	}
	for _, dir := range s.fallbackDirs {
		if found := s.checkOneDir(filename, dir); found != "" {
			return found
		}
	}
	if s.relativeIncludes && lastPath != "" {
		if found := s.checkOneDir(filename, lastPath); found != "" {
			return found
		}
	}

	if errPrefix != "" {
		s.reporter.Error(subject, errPrefix+"'"+filename+"'", s.lookedMsg(filename))
	}
	return ""
}

// lookedMsg builds the detail text for a failed lookup. The full candidate
// listing is emitted at most once per process; over-long names get a hint
// about OS filename length limits instead.
func (s *SearchPath) lookedMsg(modname string) string {
	var b strings.Builder
	if len(modname) > longNameThreshold {
		b.WriteString("... Note: Name is longer than 127 characters; automatic file lookup may have failed due to OS filename length limits.\n")
		b.WriteString("... Suggest putting filename with this module/package onto command line instead.")
		return b.String()
	}
	if s.notFoundHintShown {
		return ""
	}
	s.notFoundHintShown = true
	if len(s.userDirs) == 0 {
		b.WriteString("... This may be because there's no search path specified with -I<dir>.\n")
	}
	b.WriteString("... Looked in:")
	for _, dir := range s.userDirs {
		for _, ext := range s.libExts {
			b.WriteString("\n     " + pathutil.Join(dir, modname+ext))
		}
	}
	for _, dir := range s.fallbackDirs {
		for _, ext := range s.libExts {
			b.WriteString("\n     " + pathutil.Join(dir, modname+ext))
		}
	}
	return b.String()
}
