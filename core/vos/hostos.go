package vos

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// HostOS is the production VOS: environment, working directory and
// filesystem are those of the interpreter process itself.
type HostOS struct {
	fs  afero.Fs
	vio VIO

	mu  sync.Mutex
	pty PTY
}

var _ VOS = (*HostOS)(nil)

// NewHostOS returns a VOS bound to the real process state and the
// process standard streams.
func NewHostOS() *HostOS {
	return &HostOS{
		fs:  afero.NewOsFs(),
		vio: NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
	}
}

func (h *HostOS) Getenv(key string) string            { return os.Getenv(key) }
func (h *HostOS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (h *HostOS) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (h *HostOS) Environ() []string                   { return os.Environ() }

func (h *HostOS) Stdin() io.ReadCloser   { return h.vio.Stdin() }
func (h *HostOS) Stdout() io.WriteCloser { return h.vio.Stdout() }
func (h *HostOS) Stderr() io.WriteCloser { return h.vio.Stderr() }

// Getwd and Chdir use the process working directory so relative paths
// passed straight to the OS filesystem resolve correctly.
func (h *HostOS) Getwd() (string, error) { return os.Getwd() }
func (h *HostOS) Chdir(dir string) error { return os.Chdir(dir) }

func (h *HostOS) Open(name string) (afero.File, error)   { return h.fs.Open(name) }
func (h *HostOS) Create(name string) (afero.File, error) { return h.fs.Create(name) }
func (h *HostOS) Stat(name string) (os.FileInfo, error)  { return h.fs.Stat(name) }

func (h *HostOS) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(h.fs, name)
}

func (h *HostOS) Mkdir(name string, perm os.FileMode) error    { return h.fs.Mkdir(name, perm) }
func (h *HostOS) MkdirAll(path string, perm os.FileMode) error { return h.fs.MkdirAll(path, perm) }
func (h *HostOS) Remove(name string) error                     { return h.fs.Remove(name) }
func (h *HostOS) RemoveAll(path string) error                  { return h.fs.RemoveAll(path) }
func (h *HostOS) Rename(oldname, newname string) error         { return h.fs.Rename(oldname, newname) }
func (h *HostOS) Chmod(name string, mode os.FileMode) error    { return h.fs.Chmod(name, mode) }

func (h *HostOS) Chtimes(name string, atime, mtime time.Time) error {
	return h.fs.Chtimes(name, atime, mtime)
}

func (h *HostOS) SetPTY(pty PTY) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pty = pty
}

func (h *HostOS) GetPTY() PTY {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pty
}
