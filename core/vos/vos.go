// Package vos virtualizes the small OS surface the interpreter core
// depends on: environment variables, standard streams, the working
// directory and filesystem primitives. Production code runs against the
// host process (HostOS); tests and sandboxed SSH sessions run against an
// in-memory afero filesystem (FsOS).
package vos

// PTY describes the terminal, if any, attached to the session.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VIO
	VFS

	SetPTY(PTY)
	GetPTY() PTY
}
