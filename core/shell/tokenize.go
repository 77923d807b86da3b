// Package shell parses raw interpreter input into structured command
// invocations. The rules follow POSIX word splitting for the subset the
// interpreter supports: single quotes, double quotes, backslash escapes
// and semicolon statement separators.
//
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
package shell

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrUnterminatedQuote is reported when input ends inside a quoted string.
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
	// ErrEmptyCommand is reported when a segment contains no words.
	ErrEmptyCommand = errors.New("empty command")
)

// quoteState tracks which kind of quote the scanner is currently inside.
type quoteState int

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
)

// Tokenize splits one command segment into words.
//
// Outside quotes, whitespace separates words, a backslash makes the next
// character literal (including whitespace) and a quote character opens a
// quoted run. Single quotes are strictly literal. Inside double quotes a
// backslash escapes only `"`, `\` and `$`; any other pair is kept verbatim.
// Quote characters themselves never appear in the output, so adjacent
// quoted runs concatenate into a single word.
func Tokenize(input string) ([]string, error) {
	var tokens []string
	var buf strings.Builder
	state := quoteNone

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case quoteSingle:
			if c == '\'' {
				state = quoteNone
				continue
			}
			buf.WriteRune(c)

		case quoteDouble:
			switch c {
			case '"':
				state = quoteNone
			case '\\':
				if i+1 >= len(runes) {
					break
				}
				i++
				switch runes[i] {
				case '"', '\\', '$':
					buf.WriteRune(runes[i])
				default:
					buf.WriteRune('\\')
					buf.WriteRune(runes[i])
				}
			default:
				buf.WriteRune(c)
			}

		default:
			switch {
			case c == '\\':
				// A trailing lone backslash is dropped, matching the word
				// splitting behavior of sh.
				if i+1 < len(runes) {
					i++
					buf.WriteRune(runes[i])
				}
			case c == '\'':
				state = quoteSingle
			case c == '"':
				state = quoteDouble
			case unicode.IsSpace(c):
				flush()
			default:
				buf.WriteRune(c)
			}
		}
	}

	if state != quoteNone {
		return nil, ErrUnterminatedQuote
	}

	flush()
	return tokens, nil
}
