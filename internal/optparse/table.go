package optparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iq-signum/verilator/internal/diag"
)

// kind discriminates the matching/arity behavior of one descriptor.
type kind int

const (
	kindFlag      kind = iota // exact name, bool slot set true, consumes 1
	kindToggle                // exact name or -no- sibling, bool slot, consumes 1
	kindCall                  // exact name, no-arg callback, consumes 1
	kindOnOff                 // exact name or -no- sibling, bool callback, consumes 1
	kindVal                   // exact name, next token to callback, consumes 2
	kindIntVal                // exact name, next token parsed into int slot, consumes 2
	kindStrVal                // exact name, next token into string slot, consumes 2
	kindPrefix                // declared prefix, remainder to callback, consumes 1
	kindPrefixVal             // declared prefix, remainder plus next token, consumes 2
)

// descriptor is one declared option. Declared once at startup and immutable
// after Finalize.
type descriptor struct {
	name      string // declared spelling, including leading - or +
	kind      kind
	boolSlot  *bool
	intSlot   *int
	strSlot   *string
	call      func()
	onOff     func(bool)
	val       func(string)
	prefixFn  func(rest string)
	prefixVal func(rest, val string)
}

// Table holds the declared option descriptors and dispatches tokens against
// them. It is not safe for concurrent mutation; declaration happens on the
// invocation goroutine before any parsing.
type Table struct {
	reporter  *diag.Reporter
	exact     map[string]*descriptor
	prefixes  []*descriptor // sorted by declared prefix length, longest first
	names     []string      // every declared spelling, for suggestions
	finalized bool
}

// NewTable creates an empty descriptor table reporting parse-local errors
// through r.
func NewTable(r *diag.Reporter) *Table {
	return &Table{
		reporter: r,
		exact:    make(map[string]*descriptor),
	}
}

func (t *Table) add(d *descriptor) {
	if t.finalized {
		panic("optparse: declaration after Finalize: " + d.name)
	}
	switch d.kind {
	case kindPrefix, kindPrefixVal:
		t.prefixes = append(t.prefixes, d)
	default:
		if _, dup := t.exact[d.name]; dup {
			panic("optparse: duplicate option declaration: " + d.name)
		}
		t.exact[d.name] = d
	}
	t.names = append(t.names, d.name)
}

// negated returns the -no- sibling spelling for a toggle name.
func negated(name string) string {
	return "-no-" + strings.TrimPrefix(name, "-")
}

// Flag declares a bare option that sets slot true.
func (t *Table) Flag(name string, slot *bool) {
	t.add(&descriptor{name: name, kind: kindFlag, boolSlot: slot})
}

// Toggle declares an on/off option: name sets slot true, the -no- sibling
// sets it false.
func (t *Table) Toggle(name string, slot *bool) {
	d := &descriptor{name: name, kind: kindToggle, boolSlot: slot}
	t.add(d)
	t.exact[negated(name)] = d
	t.names = append(t.names, negated(name))
}

// Call declares an option invoking a no-arg callback.
func (t *Table) Call(name string, fn func()) {
	t.add(&descriptor{name: name, kind: kindCall, call: fn})
}

// OnOff declares an on/off option invoking a bool callback; the -no- sibling
// passes false.
func (t *Table) OnOff(name string, fn func(bool)) {
	d := &descriptor{name: name, kind: kindOnOff, onOff: fn}
	t.add(d)
	t.exact[negated(name)] = d
	t.names = append(t.names, negated(name))
}

// Val declares an option consuming the following token as a value passed to
// fn.
func (t *Table) Val(name string, fn func(string)) {
	t.add(&descriptor{name: name, kind: kindVal, val: fn})
}

// IntVal declares an option consuming the following token as an integer
// stored into slot. A token that does not parse is reported and the slot is
// left at its prior value.
func (t *Table) IntVal(name string, slot *int) {
	t.add(&descriptor{name: name, kind: kindIntVal, intSlot: slot})
}

// StrVal declares an option consuming the following token into slot.
func (t *Table) StrVal(name string, slot *string) {
	t.add(&descriptor{name: name, kind: kindStrVal, strSlot: slot})
}

// Prefix declares a partial-match option: a token beginning with name has
// the remainder passed to fn.
func (t *Table) Prefix(name string, fn func(rest string)) {
	t.add(&descriptor{name: name, kind: kindPrefix, prefixFn: fn})
}

// PrefixVal declares a partial-match option additionally consuming the next
// token as an associated value.
func (t *Table) PrefixVal(name string, fn func(rest, val string)) {
	t.add(&descriptor{name: name, kind: kindPrefixVal, prefixVal: fn})
}

// Finalize freezes the table. Prefix descriptors are ordered longest first
// so the longest declared prefix wins among partial matches.
func (t *Table) Finalize() {
	sort.SliceStable(t.prefixes, func(i, j int) bool {
		return len(t.prefixes[i].name) > len(t.prefixes[j].name)
	})
	sort.Strings(t.names)
	t.finalized = true
}

func (t *Table) mustBeFinalized() {
	if !t.finalized {
		panic(fmt.Sprintf("optparse: Parse before Finalize (%d descriptors)", len(t.names)))
	}
}
