package commands

import (
	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var exitSpec = &CommandSpec{
	Name:  "exit",
	Use:   "exit",
	Short: "Cause the interpreter to exit.",
	Run:   Exit,
}

// Exit requests loop termination. Arguments are ignored.
func Exit(virtOS vos.VOS, inv shell.Invocation) Result {
	return Result{ShouldExit: true}
}

var _ ProcessFunc = Exit

func init() {
	mustRegister(exitSpec)
}
