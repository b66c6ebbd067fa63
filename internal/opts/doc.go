// Package opts owns the resolved option state for one compiler invocation.
// An Options value is created at process start, mutated single-threadedly
// while command-line and argument-file tokens are consumed, and transitions
// to read-only exactly once when Finalize is called. Later compiler stages
// may then read it concurrently.
package opts
