package commands

import (
	"fmt"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var cdSpec = &CommandSpec{
	Name:  "cd",
	Use:   "cd [DIRECTORY]",
	Short: "Change the working directory.",
}

// Cd implements the cd builtin. Without arguments it changes to $HOME,
// falling back to "/" when HOME is unset.
func Cd(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := cdSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		var target string
		switch len(inv.Args) {
		case 0:
			home, ok := virtOS.LookupEnv("HOME")
			if !ok {
				home = "/"
			}
			target = home
		case 1:
			target = inv.Args[0]
		default:
			fmt.Fprintln(out.Stderr(), "cd: too many arguments")
			return
		}

		if err := virtOS.Chdir(target); err != nil {
			fmt.Fprintf(out.Stderr(), "cd: %s: %s\n", target, errText(err))
		}
	})
}

var _ ProcessFunc = Cd

func init() {
	cdSpec.Run = Cd
	mustRegister(cdSpec)
}
