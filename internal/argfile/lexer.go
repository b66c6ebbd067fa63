package argfile

import (
	"strings"
	"unicode"
)

// Lex converts the raw text of an argument file into an ordered list of word
// tokens with comments removed. The returned flag is true when a /* comment
// was still open at end of input; the tokens lexed from the stripped text are
// returned regardless so processing can continue.
func Lex(src string) (words []string, unterminated bool) {
	stripped, unterminated := stripComments(src)
	return splitWords(stripped), unterminated
}

// stripComments removes //, # and /* */ comments. A // starts a comment only
// at start of line or after whitespace, so /file//path survives. A # starts
// a comment only when nothing but whitespace precedes it on the line.
// Comment-stripped lines are re-joined with single spaces.
func stripComments(src string) (string, bool) {
	var out strings.Builder
	inCmt := false
	for _, line := range strings.Split(src, "\n") {
		lastch := byte(' ')
		spaceBegin := true // at beginning of line or leading spaces only
		for i := 0; i < len(line); i++ {
			c := line[i]
			next := byte(0)
			if i+1 < len(line) {
				next = line[i+1]
			}
			switch {
			case inCmt:
				if c == '*' && next == '/' {
					inCmt = false
					i++
				}
			case c == '/' && next == '/' && (i == 0 || isSpace(lastch)):
				i = len(line) // ignore to end of line
			case c == '#' && spaceBegin:
				i = len(line)
			case c == '/' && next == '*':
				inCmt = true
				spaceBegin = false
				i++
			default:
				if !isSpace(c) {
					spaceBegin = false
				}
				out.WriteByte(c)
			}
			lastch = c
		}
		out.WriteByte(' ')
	}
	return out.String(), inCmt
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// lexState is the state of the word-splitting machine.
type lexState int

const (
	stBare lexState = iota
	stSingleQuoted
	stDoubleQuoted
	stEscaped
)

// splitWords tokenizes comment-stripped text. Double-quoted strings honor
// backslash escapes; single-quoted strings (opened by '") copy characters
// verbatim. An apostrophe not followed by a double quote is an ordinary
// character, so tick-radix literals like 'h1F pass through untouched.
func splitWords(src string) []string {
	var words []string
	var word strings.Builder
	haveWord := false

	flush := func() {
		if haveWord {
			words = append(words, word.String())
			word.Reset()
			haveWord = false
		}
	}

	st := stBare
	returnSt := stBare // state to resume after an escape
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch st {
		case stBare:
			switch {
			case isSpace(c):
				flush()
			case c == '\\':
				returnSt = st
				st = stEscaped
			case c == '\'':
				// Peek to decide between a quoted string and a base
				// specifier for an integer literal.
				i++
				if i < len(src) && src[i] == '"' {
					st = stSingleQuoted
				} else {
					word.WriteByte('\'')
					if i < len(src) {
						word.WriteByte(src[i])
					}
				}
				haveWord = true
			case c == '"':
				st = stDoubleQuoted
				haveWord = true
			default:
				word.WriteByte(c)
				haveWord = true
			}
		case stSingleQuoted:
			if c == '\'' {
				st = stBare
			} else {
				word.WriteByte(c)
			}
		case stDoubleQuoted:
			switch c {
			case '"':
				st = stBare
			case '\\':
				returnSt = st
				st = stEscaped
			default:
				word.WriteByte(c)
			}
		case stEscaped:
			word.WriteByte(c)
			haveWord = true
			st = returnSt
		}
	}
	flush()
	return words
}
