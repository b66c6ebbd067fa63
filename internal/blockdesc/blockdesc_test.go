package blockdesc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iq-signum/verilator/internal/diag"
)

const optName = "--hierarchical-block"

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		opts     string
		expected *Block
		errMsg   string // substring of the reported summary, "" for clean parse
	}{
		{
			name: "names only",
			opts: "top,topMangled",
			expected: &Block{
				OrigName:    "top",
				MangledName: "topMangled",
				Params:      map[string]string{},
			},
		},
		{
			name: "names and parameters",
			opts: "orig,mangled,P1,1,P2,2",
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"P1", "1"}, {"P2", "2"}},
				Params:      map[string]string{"P1": "1", "P2": "2"},
			},
		},
		{
			name: "quoted value keeps quotes and inner comma",
			opts: `orig,mangled,STR,"a,b"`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"STR", `"a,b"`}},
				Params:      map[string]string{"STR": `"a,b"`},
			},
		},
		{
			name: "escaped quote inside quoted value",
			opts: `orig,mangled,STR,"a\"b"`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"STR", `"a"b"`}},
				Params:      map[string]string{"STR": `"a"b"`},
			},
		},
		{
			name: "odd entry count",
			opts: "orig,mangled,P1",
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				Params:      map[string]string{},
			},
			errMsg: "requires the number of entries to be even",
		},
		{
			name:     "too few values",
			opts:     "only",
			expected: &Block{Params: map[string]string{}},
			errMsg:   "requires at least two comma-separated values",
		},
		{
			name: "duplicate parameter keeps first",
			opts: "orig,mangled,P1,1,P1,2",
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"P1", "1"}},
				Params:      map[string]string{"P1": "1"},
			},
			errMsg: "Module name 'P1' is duplicated",
		},
		{
			// The partial field flushes before the error, so the
			// best-effort block still carries what parsed cleanly.
			name: "trailing backslash in quoted value",
			opts: `orig,mangled,STR,"abc\`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"STR", `"abc`}},
			},
			errMsg: `must not end with \`,
		},
		{
			name: "bad escape in quoted value",
			opts: `orig,mangled,STR,"a\nb"`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"STR", `"a`}},
			},
			errMsg: `does not allow 'n' after \`,
		},
		{
			name: "quote in the middle of bare value",
			opts: `orig,man"gled`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "man",
			},
			errMsg: `does not allow '"' in the middle of literal`,
		},
		{
			name: "text after closing quote",
			opts: `orig,mangled,STR,"a"x`,
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
				ParamList:   []Param{{"STR", `"a"`}},
			},
			errMsg: "expects ',', but 'x' is passed",
		},
		{
			name: "trailing comma",
			opts: "orig,mangled,",
			expected: &Block{
				OrigName:    "orig",
				MangledName: "mangled",
			},
			errMsg: "must not end with ','",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := diag.NewReporter()
			b := Parse(optName, tc.opts, r)

			if tc.errMsg == "" {
				require.False(t, r.HasErrors(), "unexpected diagnostics: %v", r.All())
				if diff := cmp.Diff(tc.expected, b); diff != "" {
					t.Errorf("block mismatch (-want +got):\n%s", diff)
				}
				return
			}
			require.True(t, r.HasErrors())
			assert.Contains(t, r.All()[0].Summary, tc.errMsg)
			assert.Equal(t, tc.expected.OrigName, b.OrigName)
			assert.Equal(t, tc.expected.MangledName, b.MangledName)
			if diff := cmp.Diff(tc.expected.ParamList, b.ParamList); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
