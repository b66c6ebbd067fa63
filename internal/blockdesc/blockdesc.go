// Package blockdesc parses the compact block-descriptor argument of the form
// "origName,mangledName,param,value,...". Commas separate fields except
// inside a double-quoted field; a backslash inside quotes escapes only a
// backslash or a double quote. Malformed descriptors are reported against
// the command line and never abort processing.
package blockdesc

import (
	"github.com/iq-signum/verilator/internal/diag"
)

// Param is one ordered parameter override.
type Param struct {
	Name  string
	Value string
}

// Block is one parsed block descriptor. Parameter order is preserved;
// Params gives O(1) lookup by name.
type Block struct {
	OrigName    string
	MangledName string
	ParamList   []Param
	Params      map[string]string
}

// Parse splits opts into a Block. optName is the option spelling used in
// diagnostics (e.g. "--hierarchical-block"). All errors accumulate through
// r against the synthetic command-line location; the best-effort descriptor
// is returned regardless.
func Parse(optName, opts string, r *diag.Reporter) *Block {
	cmdline := diag.CommandLine()
	vals := splitFields(optName, opts, r)

	b := &Block{Params: make(map[string]string)}
	if len(vals) >= 2 {
		if len(vals)%2 != 0 {
			r.Error(cmdline, optName+" requires the number of entries to be even", "")
		}
		b.OrigName = vals[0]
		b.MangledName = vals[1]
	} else {
		r.Error(cmdline, optName+" requires at least two comma-separated values", "")
	}
	for i := 2; i+1 < len(vals); i += 2 {
		name, value := vals[i], vals[i+1]
		if _, dup := b.Params[name]; dup {
			r.Error(cmdline, "Module name '"+name+"' is duplicated in "+optName, "")
			continue
		}
		b.Params[name] = value
		b.ParamList = append(b.ParamList, Param{Name: name, Value: value})
	}
	return b
}

// splitFields splits on commas outside double-quoted fields. Quoted fields
// keep their surrounding quotes so a later stage can distinguish string
// literals from bare values.
func splitFields(optName, opts string, r *diag.Reporter) []string {
	cmdline := diag.CommandLine()
	var vals []string
	var cur []byte
	inStr := false

	for i := 0; i < len(opts); {
		c := opts[i]
		if inStr {
			switch c {
			case '\\':
				i++
				if i >= len(opts) {
					r.Error(cmdline, optName+" must not end with \\", "")
					return flush(vals, cur)
				}
				c = opts[i]
				if c != '"' && c != '\\' {
					r.Error(cmdline, optName+" does not allow '"+string(c)+"' after \\", "")
					return flush(vals, cur)
				}
				cur = append(cur, c)
				i++
			case '"': // end of quoted field
				cur = append(cur, c)
				vals = append(vals, string(cur))
				cur = cur[:0]
				i++
				if i >= len(opts) {
					return vals
				}
				if opts[i] != ',' {
					r.Error(cmdline,
						optName+" expects ',', but '"+string(opts[i])+"' is passed", "")
					return vals
				}
				i++
				if i >= len(opts) {
					r.Error(cmdline, optName+" must not end with ','", "")
					return vals
				}
				inStr = opts[i] == '"'
				cur = append(cur, opts[i])
				i++
			default:
				cur = append(cur, c)
				i++
			}
			continue
		}
		if c == '"' {
			r.Error(cmdline, optName+" does not allow '\"' in the middle of literal", "")
			return flush(vals, cur)
		}
		if c == ',' { // end of this field
			vals = append(vals, string(cur))
			cur = cur[:0]
			i++
			if i >= len(opts) {
				r.Error(cmdline, optName+" must not end with ','", "")
				return vals
			}
			inStr = opts[i] == '"'
		}
		cur = append(cur, opts[i])
		i++
	}
	return flush(vals, cur)
}

func flush(vals []string, cur []byte) []string {
	if len(cur) > 0 {
		vals = append(vals, string(cur))
	}
	return vals
}
