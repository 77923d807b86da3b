package commands

import (
	"fmt"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var mkdirSpec = &CommandSpec{
	Name:  "mkdir",
	Use:   "mkdir DIRECTORY...",
	Short: "Create directories, making parent directories as needed.",
}

// Mkdir implements a POSIX mkdir -p style command: missing intermediate
// directories are created and an existing directory is not an error.
//
// https://pubs.opengroup.org/onlinepubs/9699919799.2018edition/utilities/mkdir.html
func Mkdir(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := mkdirSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		if len(inv.Args) == 0 {
			fmt.Fprintln(out.Stderr(), "mkdir: missing operand")
			return
		}

		for _, dir := range inv.Args {
			if err := virtOS.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(out.Stderr(), "mkdir: cannot create directory '%s': %s\n", dir, errText(err))
			}
		}
	})
}

var _ ProcessFunc = Mkdir

func init() {
	mkdirSpec.Run = Mkdir
	mustRegister(mkdirSpec)
}
