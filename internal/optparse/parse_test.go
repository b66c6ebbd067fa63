package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iq-signum/verilator/internal/diag"
)

func newTestTable(t *testing.T) (*Table, *diag.Reporter) {
	t.Helper()
	r := diag.NewReporter()
	return NewTable(r), r
}

func TestParseFlagAndToggle(t *testing.T) {
	tbl, r := newTestTable(t)
	var build, exe bool
	tbl.Flag("-build", &build)
	tbl.Toggle("-exe", &exe)
	tbl.Finalize()

	subject := diag.CommandLine()

	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"-build"}))
	assert.True(t, build)

	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"-exe"}))
	assert.True(t, exe)
	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"-no-exe"}))
	assert.False(t, exe)

	// One and two leading dashes are equivalent spellings.
	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"--exe"}))
	assert.True(t, exe)
	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"--no-exe"}))
	assert.False(t, exe)

	assert.False(t, r.HasErrors())
}

func TestParseValueKinds(t *testing.T) {
	tbl, r := newTestTable(t)
	var name string
	var limit int
	var got []string
	tbl.StrVal("-o", &name)
	tbl.IntVal("-error-limit", &limit)
	tbl.Val("-clk", func(v string) { got = append(got, v) })
	tbl.Finalize()

	subject := diag.CommandLine()

	assert.Equal(t, 2, tbl.Parse(subject, 0, []string{"-o", "sim"}))
	assert.Equal(t, "sim", name)

	assert.Equal(t, 2, tbl.Parse(subject, 0, []string{"-error-limit", "9"}))
	assert.Equal(t, 9, limit)

	assert.Equal(t, 2, tbl.Parse(subject, 0, []string{"-clk", "clk_i"}))
	assert.Equal(t, []string{"clk_i"}, got)
	assert.False(t, r.HasErrors())
}

func TestParseIntValBadNumberIsLocalError(t *testing.T) {
	tbl, r := newTestTable(t)
	limit := 50
	tbl.IntVal("-error-limit", &limit)
	tbl.Finalize()

	consumed := tbl.Parse(diag.CommandLine(), 0, []string{"-error-limit", "lots"})
	assert.Equal(t, 2, consumed, "both tokens consumed so processing continues")
	assert.Equal(t, 50, limit, "slot keeps its prior value")
	require.True(t, r.HasErrors())
	assert.Contains(t, r.All()[0].Summary, "requires an integer")
}

func TestParseMissingValueIsLocalError(t *testing.T) {
	tbl, r := newTestTable(t)
	var name string
	tbl.StrVal("-o", &name)
	tbl.Finalize()

	consumed := tbl.Parse(diag.CommandLine(), 0, []string{"-o"})
	assert.Equal(t, 1, consumed)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.All()[0].Summary, "requires an argument")
}

func TestParsePrefixKinds(t *testing.T) {
	tbl, r := newTestTable(t)
	var dirs []string
	levels := map[string]string{}
	tbl.Prefix("+incdir+", func(rest string) { dirs = append(dirs, rest) })
	tbl.PrefixVal("-debugi-", func(rest, val string) { levels[rest] = val })
	tbl.Finalize()

	subject := diag.CommandLine()

	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"+incdir+rtl/lib"}))
	assert.Equal(t, []string{"rtl/lib"}, dirs)

	assert.Equal(t, 2, tbl.Parse(subject, 0, []string{"-debugi-width", "7"}))
	assert.Equal(t, map[string]string{"width": "7"}, levels)
	assert.False(t, r.HasErrors())
}

func TestParseExactBeatsPartial(t *testing.T) {
	tbl, _ := newTestTable(t)
	var exact, partial string
	tbl.Val("-dump", func(v string) { exact = v })
	tbl.Prefix("-dump-", func(rest string) { partial = rest })
	tbl.Finalize()

	subject := diag.CommandLine()

	assert.Equal(t, 2, tbl.Parse(subject, 0, []string{"-dump", "tree"}))
	assert.Equal(t, "tree", exact)
	assert.Empty(t, partial)

	assert.Equal(t, 1, tbl.Parse(subject, 0, []string{"-dump-tree"}))
	assert.Equal(t, "tree", partial)
}

func TestParseLongestPrefixWins(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected string // which prefix should fire
	}{
		{name: "short prefix", token: "-Wall", expected: "-W"},
		{name: "long prefix", token: "-Wno-fatal", expected: "-Wno-"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, _ := newTestTable(t)
			fired := ""
			// Declared shortest first; Finalize orders longest first.
			tbl.Prefix("-W", func(string) { fired = "-W" })
			tbl.Prefix("-Wno-", func(string) { fired = "-Wno-" })
			tbl.Finalize()

			require.Equal(t, 1, tbl.Parse(diag.CommandLine(), 0, []string{tc.token}))
			assert.Equal(t, tc.expected, fired)
		})
	}
}

func TestParseNoMatchConsumesNothing(t *testing.T) {
	tbl, r := newTestTable(t)
	var build bool
	tbl.Flag("-build", &build)
	tbl.Finalize()

	assert.Equal(t, 0, tbl.Parse(diag.CommandLine(), 0, []string{"-bogus"}))
	assert.False(t, r.HasErrors(), "no match is not an error at this layer")
}

func TestSuggestions(t *testing.T) {
	tbl, _ := newTestTable(t)
	var a, b, c bool
	tbl.Flag("-bogus-flop", &a)
	tbl.Flag("-bogus-fleg", &b)
	tbl.Flag("-unrelated-option-name", &c)
	tbl.Finalize()

	names := tbl.Suggestions("-bogus-flag")
	assert.Contains(t, names, "-bogus-flop")
	assert.Contains(t, names, "-bogus-fleg")
	assert.NotContains(t, names, "-unrelated-option-name")
	// Nearest first: fleg is one edit away, flop is two.
	require.NotEmpty(t, names)
	assert.Equal(t, "-bogus-fleg", names[0])

	msg := tbl.SuggestionMsg("-bogus-flag")
	assert.Contains(t, msg, "Suggest")
	assert.Contains(t, msg, "'-bogus-fleg'")
	assert.Contains(t, msg, "'-bogus-flop'")

	assert.Empty(t, tbl.SuggestionMsg("-zzzzzzzzzzzz"))
}
