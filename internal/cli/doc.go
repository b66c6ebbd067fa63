// Package cli ties the option front end together: it runs the dispatch
// engine over the command line, prints accumulated diagnostics, and
// translates fatal conditions into process exit codes.
package cli
