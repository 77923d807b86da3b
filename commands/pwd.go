package commands

import (
	"fmt"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var pwdSpec = &CommandSpec{
	Name:  "pwd",
	Use:   "pwd",
	Short: "Print the name of the current working directory.",
}

// Pwd implements the POSIX pwd command.
func Pwd(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := pwdSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		wd, err := virtOS.Getwd()
		if err != nil {
			fmt.Fprintf(out.Stderr(), "pwd: error retrieving current directory: %v\n", err)
			return
		}
		fmt.Fprintln(out.Stdout(), wd)
	})
}

var _ ProcessFunc = Pwd

func init() {
	pwdSpec.Run = Pwd
	mustRegister(pwdSpec)
}
