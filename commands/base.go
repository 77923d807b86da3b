// Package commands implements the interpreter's builtin command set.
// Every command runs in-process against a vos.VOS; nothing here ever
// spawns an external program.
package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	getopt "github.com/pborman/getopt/v2"
	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

// Result is what one command invocation produces. The driving loop
// writes Stdout and Stderr to the session streams and stops reading
// input when ShouldExit is set. Stderr content is newline-terminated
// line text.
type Result struct {
	Stdout     []byte
	Stderr     []byte
	ShouldExit bool
}

// ProcessFunc is the signature shared by all builtin handlers.
type ProcessFunc func(virtOS vos.VOS, inv shell.Invocation) Result

// CommandSpec describes one registered builtin.
type CommandSpec struct {
	// Name the command is dispatched under.
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// Run is the handler.
	Run ProcessFunc
}

// simple builds the per-invocation flag helper for this command.
// A fresh one is needed every call because getopt sets are stateful.
func (spec *CommandSpec) simple() *SimpleCommand {
	return &SimpleCommand{Use: spec.Use}
}

// AllCommands holds every registered builtin keyed by name. It is
// populated by init functions and never written afterwards, so it is
// safe to share without locking.
var AllCommands = make(map[string]*CommandSpec)

func mustRegister(spec *CommandSpec) {
	if _, ok := AllCommands[spec.Name]; ok {
		panic("duplicate command registration: " + spec.Name)
	}
	AllCommands[spec.Name] = spec
}

// Execute looks up a builtin by name and runs it with pre-classified
// flags and arguments.
//
// An unknown name is a normal, recoverable result, not a failure of the
// dispatcher. A --help or -h flag short-circuits to the usage text
// without invoking the handler. Everything else is the handler's
// responsibility, including its own precondition checks.
func Execute(virtOS vos.VOS, name string, flags, args []string) Result {
	spec, ok := AllCommands[name]
	if !ok {
		return Result{Stderr: fmt.Appendf(nil, "Command '%s' not found\n", name)}
	}

	for _, flag := range flags {
		if flag == "--help" || flag == "-h" {
			var buf bytes.Buffer
			fmt.Fprintf(&buf, "usage: %s\n%s\n", spec.Use, spec.Short)
			return Result{Stdout: buf.Bytes()}
		}
	}

	return spec.Run(virtOS, shell.Invocation{Name: name, Flags: flags, Args: args})
}

// Output accumulates one command's streams while it runs.
type Output struct {
	stdout, stderr bytes.Buffer
	shouldExit     bool
}

func (o *Output) Stdout() io.Writer { return &o.stdout }
func (o *Output) Stderr() io.Writer { return &o.stderr }

// Exit marks the result as terminating the interpreter.
func (o *Output) Exit() { o.shouldExit = true }

// Result snapshots the accumulated streams.
func (o *Output) Result() Result {
	return Result{
		Stdout:     o.stdout.Bytes(),
		Stderr:     o.stderr.Bytes(),
		ShouldExit: o.shouldExit,
	}
}

// SimpleCommand reduces the boilerplate of flag handling for builtins.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// Run validates the invocation's flags against the declared set and, if
// they parse, invokes the callback. Flags arrive pre-classified from the
// parser, so only the flag slice is handed to getopt; operands stay on
// the invocation untouched.
//
// A parse failure reports the error and the one-line usage, the same
// usage the dispatcher's --help bypass renders.
func (s *SimpleCommand) Run(inv shell.Invocation, callback func(out *Output)) Result {
	out := &Output{}

	opts := s.Flags()
	if err := opts.Getopt(append([]string{inv.Name}, inv.Flags...), nil); err != nil {
		fmt.Fprintf(out.Stderr(), "%s: %v\n", inv.Name, err)
		fmt.Fprintf(out.Stderr(), "usage: %s\n", s.Use)
		return out.Result()
	}

	callback(out)
	return out.Result()
}

// errText renders an error the way Unix utilities do: the well-known
// conditions use their classic spelling and PathError nesting is
// stripped so messages don't repeat the operation and path.
func errText(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	return err.Error()
}
