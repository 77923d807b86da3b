package commands

import (
	"fmt"
	"sort"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var helpSpec = &CommandSpec{
	Name:  "help",
	Use:   "help",
	Short: "List the available commands.",
}

// Help lists every registered builtin with its short description.
func Help(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := helpSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		var names []string
		for name := range AllCommands {
			names = append(names, name)
		}
		sort.Strings(names)

		w := out.Stdout()
		fmt.Fprintln(w, "Available commands:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-10s %s\n", name, AllCommands[name].Short)
		}
	})
}

var _ ProcessFunc = Help

func init() {
	helpSpec.Run = Help
	mustRegister(helpSpec)
}
