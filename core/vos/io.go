package vos

import "io"

// VIO holds the standard streams of a session.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// NewVIOAdapter wraps arbitrary reader/writers into a VIO, adding no-op
// Close methods where needed.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  io.NopCloser(stdin),
		IStdout: nopWriteCloser{stdout},
		IStderr: nopWriteCloser{stderr},
	}
}

type VIOAdapter struct {
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

var _ VIO = (*VIOAdapter)(nil)

func (a *VIOAdapter) Stdin() io.ReadCloser {
	return a.IStdin
}

func (a *VIOAdapter) Stdout() io.WriteCloser {
	return a.IStdout
}

func (a *VIOAdapter) Stderr() io.WriteCloser {
	return a.IStderr
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error {
	return nil
}
