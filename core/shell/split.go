package shell

import "strings"

// Split breaks a raw input line into independently parsed segments on
// semicolons. A semicolon only separates statements when it is outside
// any quote and not escaped, so this walks the line with the same quote
// scan as Tokenize rather than a naive strings.Split.
//
// Segment text is kept raw, quotes and escapes included, because each
// segment is handed back to Tokenize. Segments that are empty after
// trimming (";;", a trailing ";") are dropped silently.
func Split(line string) []string {
	var segments []string
	var buf strings.Builder
	state := quoteNone

	flush := func() {
		if seg := buf.String(); strings.TrimSpace(seg) != "" {
			segments = append(segments, seg)
		}
		buf.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case quoteSingle:
			if c == '\'' {
				state = quoteNone
			}
			buf.WriteRune(c)

		case quoteDouble:
			switch c {
			case '"':
				state = quoteNone
				buf.WriteRune(c)
			case '\\':
				buf.WriteRune(c)
				if i+1 < len(runes) {
					i++
					buf.WriteRune(runes[i])
				}
			default:
				buf.WriteRune(c)
			}

		default:
			switch c {
			case ';':
				flush()
			case '\\':
				buf.WriteRune(c)
				if i+1 < len(runes) {
					i++
					buf.WriteRune(runes[i])
				}
			case '\'':
				state = quoteSingle
				buf.WriteRune(c)
			case '"':
				state = quoteDouble
				buf.WriteRune(c)
			default:
				buf.WriteRune(c)
			}
		}
	}

	flush()
	return segments
}
