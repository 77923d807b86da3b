// Package vostest provides a deterministic in-memory OS for command
// tests, with an exec.Cmd-like helper around the dispatcher.
package vostest

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
	"github.com/zero-sh/zerosh/commands"
	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

// NewTestOS returns a VOS over a fresh in-memory filesystem with empty
// standard streams.
func NewTestOS() *vos.FsOS {
	vio := vos.NewVIOAdapter(bytes.NewReader(nil), io.Discard, io.Discard)
	return vos.NewFsOS(afero.NewMemMapFs(), vio)
}

// Cmd runs one builtin through the dispatcher, similar to exec.Cmd.
type Cmd struct {
	// Argv holds the raw words of the invocation; Argv[0] is the command
	// name. Words are classified into flags and arguments with the same
	// rules the parser uses.
	Argv []string

	// Stdin backs the session input stream, used by stdin-reading
	// commands. May be set before Run.
	Stdin io.Reader

	// VOS is the deterministic OS the command runs against. Seed files
	// through Fs() before calling Run.
	VOS *vos.FsOS

	// Result holds the dispatch result after Run.
	Result commands.Result

	sessionOut bytes.Buffer
}

// Command creates a Cmd over a fresh in-memory OS.
func Command(name string, arg ...string) *Cmd {
	c := &Cmd{Argv: append([]string{name}, arg...)}
	vio := vos.NewVIOAdapter(stdinReader{c}, &c.sessionOut, &c.sessionOut)
	c.VOS = vos.NewFsOS(afero.NewMemMapFs(), vio)
	return c
}

// Fs exposes the backing filesystem for test setup.
func (c *Cmd) Fs() afero.Fs { return c.VOS.Fs() }

// Run dispatches the command and records its Result.
func (c *Cmd) Run() error {
	inv, err := shell.Classify(c.Argv)
	if err != nil {
		return err
	}
	c.Result = commands.Execute(c.VOS, inv.Name, inv.Flags, inv.Args)
	return nil
}

// CombinedOutput runs the command and returns its stdout and stderr
// bytes, stdout first.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	if err := c.Run(); err != nil {
		return nil, err
	}
	return append(append([]byte{}, c.Result.Stdout...), c.Result.Stderr...), nil
}

// SessionOutput returns everything written directly to the session
// streams, bypassing the buffered result (the interactive cat loop).
func (c *Cmd) SessionOutput() []byte {
	return c.sessionOut.Bytes()
}

// stdinReader defers to the Cmd's Stdin so it can be assigned after
// construction.
type stdinReader struct{ c *Cmd }

func (r stdinReader) Read(p []byte) (int, error) {
	if r.c.Stdin == nil {
		return 0, io.EOF
	}
	return r.c.Stdin.Read(p)
}
