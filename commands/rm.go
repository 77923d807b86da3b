package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var rmSpec = &CommandSpec{
	Name:  "rm",
	Use:   "rm [-rR] FILE...",
	Short: "Remove files or directories.",
}

// Rm implements a POSIX rm command. Each argument is handled
// independently; a failure on one path never aborts the rest.
func Rm(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := rmSpec.simple()
	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")
	recursiveAlias := cmd.Flags().Bool('R', "same as -r")

	return cmd.Run(inv, func(out *Output) {
		if len(inv.Args) == 0 {
			fmt.Fprintln(out.Stderr(), "rm: missing operand")
			return
		}

		for _, name := range inv.Args {
			info, statErr := virtOS.Stat(name)
			switch {
			case errors.Is(statErr, fs.ErrNotExist):
				fmt.Fprintf(out.Stderr(), "rm: cannot remove '%s': No such file or directory\n", name)
			case statErr != nil:
				fmt.Fprintf(out.Stderr(), "rm: cannot remove '%s': %s\n", name, errText(statErr))
			case info.IsDir() && !(*recursive || *recursiveAlias):
				fmt.Fprintf(out.Stderr(), "rm: cannot remove '%s': Is a directory\n", name)
			case info.IsDir():
				if err := virtOS.RemoveAll(name); err != nil {
					fmt.Fprintf(out.Stderr(), "rm: cannot remove '%s': %s\n", name, errText(err))
				}
			default:
				if err := virtOS.Remove(name); err != nil {
					fmt.Fprintf(out.Stderr(), "rm: cannot remove '%s': %s\n", name, errText(err))
				}
			}
		}
	})
}

var _ ProcessFunc = Rm

func init() {
	rmSpec.Run = Rm
	mustRegister(rmSpec)
}
