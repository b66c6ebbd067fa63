// Package argfile reads -f/-F argument files: it strips comments, splits the
// remaining text into word tokens honoring quoting and escaping, and
// re-enters option dispatch with the included file's directory as the new
// relative-path context. Inclusion is re-entrant; an argument file may
// include further argument files.
package argfile
