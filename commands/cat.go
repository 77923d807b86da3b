package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var catSpec = &CommandSpec{
	Name:  "cat",
	Use:   "cat [FILE]...",
	Short: "Concatenate files and print on the standard output.",
}

// Cat implements the POSIX cat command. With no arguments, or for a "-"
// operand, it echoes the input stream line by line until end of stream.
// A file that fails to read produces an error line for that file; the
// remaining files are still printed.
func Cat(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := catSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		if len(inv.Args) == 0 {
			catStdin(virtOS)
			return
		}

		for _, name := range inv.Args {
			// "-" names the input stream, not a file.
			if name == "-" {
				catStdin(virtOS)
				continue
			}

			info, err := virtOS.Stat(name)
			switch {
			case err != nil:
				fmt.Fprintf(out.Stderr(), "cat: %s: %s\n", name, errText(err))
				continue
			case info.IsDir():
				fmt.Fprintf(out.Stderr(), "cat: %s: Is a directory\n", name)
				continue
			}

			fd, err := virtOS.Open(name)
			if err != nil {
				fmt.Fprintf(out.Stderr(), "cat: %s: %s\n", name, errText(err))
				continue
			}
			if _, err := io.Copy(out.Stdout(), fd); err != nil {
				fmt.Fprintf(out.Stderr(), "cat: %s: %s\n", name, errText(err))
			}
			fd.Close()
		}
	})
}

// catStdin copies the session input to the session output a line at a
// time. It writes directly to the real stream rather than the buffered
// result so every line appears as soon as it is read.
func catStdin(virtOS vos.VOS) {
	r := bufio.NewReader(virtOS.Stdin())
	w := virtOS.Stdout()

	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				return
			}
		}
		if err != nil {
			// End of stream or a read failure both terminate the loop.
			return
		}
	}
}

var _ ProcessFunc = Cat

func init() {
	catSpec.Run = Cat
	mustRegister(catSpec)
}
