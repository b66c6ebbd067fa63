package optparse

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestDistance is the edit-distance ceiling for a declared name to be
// offered as a correction.
const maxSuggestDistance = 3

// Suggestions ranks the declared option names closest in spelling to word,
// nearest first. Names further than maxSuggestDistance edits away are not
// offered.
func (t *Table) Suggestions(word string) []string {
	word = Normalize(word)
	type scored struct {
		name string
		dist int
	}
	var close []scored
	for _, name := range t.names {
		d := levenshtein.Distance(word, name, nil)
		if d <= maxSuggestDistance {
			close = append(close, scored{name, d})
		}
	}
	sort.SliceStable(close, func(i, j int) bool { return close[i].dist < close[j].dist })
	if len(close) > 5 {
		close = close[:5]
	}
	names := make([]string, len(close))
	for i, s := range close {
		names[i] = s.name
	}
	return names
}

// SuggestionMsg formats the ranked suggestions for appending to an
// unknown-option error, or returns "" when nothing is close enough.
func (t *Table) SuggestionMsg(word string) string {
	names := t.Suggestions(word)
	if len(names) == 0 {
		return ""
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "... Suggest " + strings.Join(quoted, " or ")
}
