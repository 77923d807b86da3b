package commands

import (
	"fmt"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var mvSpec = &CommandSpec{
	Name:  "mv",
	Use:   "mv SOURCE... DEST",
	Short: "Move (rename) files.",
}

// Mv implements a POSIX mv command. Destination resolution follows the
// same rules as cp, but the operation is a rename, so it works uniformly
// for files and directories without recursing into contents.
func Mv(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := mvSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		sources, dest, ok := splitOperands(out, "mv", inv.Args)
		if !ok {
			return
		}
		if !requireDirTarget(virtOS, out, "mv", sources, dest) {
			return
		}

		for _, src := range sources {
			target := resolveDest(virtOS, dest, src)
			if err := virtOS.Rename(src, target); err != nil {
				fmt.Fprintf(out.Stderr(), "mv: cannot move '%s' to '%s': %s\n", src, target, errText(err))
			}
		}
	})
}

var _ ProcessFunc = Mv

func init() {
	mvSpec.Run = Mv
	mustRegister(mvSpec)
}
