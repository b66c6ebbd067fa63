// Package vlang enumerates the HDL language standards a source file can be
// parsed as. Filename extensions are mapped to these codes when classifying
// input files.
package vlang

import "strings"

// Code identifies one HDL language standard.
type Code int

const (
	// Invalid marks an unrecognized language string.
	Invalid Code = iota
	V1364_1995
	V1364_2001
	V1364_2005
	V1800_2005
	V1800_2009
	V1800_2012
	V1800_2017
	V1800_2023
)

var names = map[Code]string{
	V1364_1995: "1364-1995",
	V1364_2001: "1364-2001",
	V1364_2005: "1364-2005",
	V1800_2005: "1800-2005",
	V1800_2009: "1800-2009",
	V1800_2012: "1800-2012",
	V1800_2017: "1800-2017",
	V1800_2023: "1800-2023",
}

// String returns the canonical standard name, or "error" for Invalid.
func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return "error"
}

// Legal reports whether c names a real language standard.
func (c Code) Legal() bool { return c != Invalid }

// MostRecent returns the newest supported standard, the default language for
// files whose extension is not registered.
func MostRecent() Code { return V1800_2023 }

// All returns every legal code in chronological order.
func All() []Code {
	return []Code{
		V1364_1995, V1364_2001, V1364_2005,
		V1800_2005, V1800_2009, V1800_2012, V1800_2017, V1800_2023,
	}
}

// FromString resolves a language name case-insensitively, returning Invalid
// when the name matches no standard.
func FromString(s string) Code {
	for _, c := range All() {
		if strings.EqualFold(s, c.String()) {
			return c
		}
	}
	return Invalid
}
