// Package pathsearch resolves symbolic module/package names to concrete
// source files on disk. Lookup walks the user include directories, then the
// fallback directories, trying each registered library extension in order,
// and memoizes one directory listing per directory for the life of the
// process.
package pathsearch
