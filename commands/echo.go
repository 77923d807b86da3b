package commands

import (
	"fmt"
	"strings"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var echoSpec = &CommandSpec{
	Name:  "echo",
	Use:   "echo [-e] [ARG]...",
	Short: "Display a line of text.",
}

// Echo implements a POSIX echo command.
func Echo(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := echoSpec.simple()
	interpret := cmd.Flags().Bool('e', "interpret backslash escapes")

	return cmd.Run(inv, func(out *Output) {
		line := strings.Join(inv.Args, " ")
		w := out.Stdout()

		if !*interpret {
			fmt.Fprintln(w, line)
			return
		}

		expanded, stopped := expandEscapes(line)
		fmt.Fprint(w, expanded)
		if !stopped {
			fmt.Fprintln(w)
		}
	})
}

// expandEscapes interprets the echo -e escape sequences. The boolean is
// true when a \c sequence cut the output short, which also suppresses
// the trailing newline and everything after it.
func expandEscapes(s string) (string, bool) {
	var buf strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			buf.WriteRune(c)
			continue
		}
		if i+1 >= len(runes) {
			// Trailing backslash stays literal.
			buf.WriteRune('\\')
			break
		}

		i++
		switch runes[i] {
		case 'a':
			buf.WriteByte('\a')
		case 'b':
			buf.WriteByte('\b')
		case 'e':
			buf.WriteByte(0x1b)
		case 'f':
			buf.WriteByte('\f')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'v':
			buf.WriteByte('\v')
		case '\\':
			buf.WriteByte('\\')
		case 'c':
			return buf.String(), true
		default:
			// Unrecognized escapes are kept verbatim.
			buf.WriteRune('\\')
			buf.WriteRune(runes[i])
		}
	}

	return buf.String(), false
}

var _ ProcessFunc = Echo

func init() {
	echoSpec.Run = Echo
	mustRegister(echoSpec)
}
