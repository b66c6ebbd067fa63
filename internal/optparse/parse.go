package optparse

import (
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Normalize strips one or two leading dashes down to a single dash so that
// -name and --name are equivalent spellings. Plus-style tokens pass through
// untouched.
func Normalize(token string) string {
	if strings.HasPrefix(token, "--") {
		return token[1:]
	}
	return token
}

// Parse attempts to match args[i] against the descriptor table and returns
// the number of tokens consumed, 0 meaning no descriptor matched. subject
// locates diagnostics for value parse failures.
func (t *Table) Parse(subject *hcl.Range, i int, args []string) int {
	t.mustBeFinalized()
	token := Normalize(args[i])

	if d, ok := t.exact[token]; ok {
		return t.apply(subject, d, token, i, args)
	}
	// Longest declared prefix wins; t.prefixes is sorted longest first.
	for _, d := range t.prefixes {
		if strings.HasPrefix(token, d.name) {
			return t.apply(subject, d, token, i, args)
		}
	}
	return 0
}

// nextValue fetches the value token for a two-token option. A missing value
// is a reported error; the option token alone is consumed.
func (t *Table) nextValue(subject *hcl.Range, name string, i int, args []string) (string, bool) {
	if i+1 >= len(args) {
		t.reporter.Error(subject, "Option "+name+" requires an argument", "")
		return "", false
	}
	return args[i+1], true
}

func (t *Table) apply(subject *hcl.Range, d *descriptor, token string, i int, args []string) int {
	switch d.kind {
	case kindFlag:
		*d.boolSlot = true
		return 1
	case kindToggle:
		*d.boolSlot = token == d.name
		return 1
	case kindCall:
		d.call()
		return 1
	case kindOnOff:
		d.onOff(token == d.name)
		return 1
	case kindVal:
		val, ok := t.nextValue(subject, d.name, i, args)
		if !ok {
			return 1
		}
		d.val(val)
		return 2
	case kindIntVal:
		val, ok := t.nextValue(subject, d.name, i, args)
		if !ok {
			return 1
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			t.reporter.Error(subject,
				"Option "+d.name+" requires an integer, but '"+val+"' was passed", "")
			return 2
		}
		*d.intSlot = n
		return 2
	case kindStrVal:
		val, ok := t.nextValue(subject, d.name, i, args)
		if !ok {
			return 1
		}
		*d.strSlot = val
		return 2
	case kindPrefix:
		d.prefixFn(token[len(d.name):])
		return 1
	case kindPrefixVal:
		val, ok := t.nextValue(subject, d.name, i, args)
		if !ok {
			return 1
		}
		d.prefixVal(token[len(d.name):], val)
		return 2
	}
	return 0
}
