// Package optparse is the option dispatch engine. The configuration layer
// declares a table of options once at startup; the engine then consumes
// command-line tokens against it, returning how many tokens each match
// consumed. Matching policy: an exact name match always beats a partial
// match, and among partial matches the longest declared prefix wins.
package optparse
