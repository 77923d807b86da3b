package vos

import (
	"io"
	"io/fs"
	"os"
	"path"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/afero"
)

// FsOS is a VOS over an arbitrary afero filesystem with its own working
// directory and environment, detached from the host process. It backs
// tests and sandboxed SSH sessions.
type FsOS struct {
	fs  afero.Fs
	env *MapEnv
	vio VIO

	mu  sync.Mutex
	cwd string
	pty PTY
}

var _ VOS = (*FsOS)(nil)

// NewFsOS returns a VOS over fsys with an empty environment and the
// working directory at "/".
func NewFsOS(fsys afero.Fs, vio VIO) *FsOS {
	return &FsOS{
		fs:  fsys,
		env: NewMapEnv(),
		vio: vio,
		cwd: "/",
	}
}

// Fs exposes the backing filesystem, mainly for test setup.
func (o *FsOS) Fs() afero.Fs { return o.fs }

func (o *FsOS) Getenv(key string) string            { return o.env.Getenv(key) }
func (o *FsOS) LookupEnv(key string) (string, bool) { return o.env.LookupEnv(key) }
func (o *FsOS) Setenv(key, value string) error      { return o.env.Setenv(key, value) }
func (o *FsOS) Environ() []string                   { return o.env.Environ() }

func (o *FsOS) Stdin() io.ReadCloser   { return o.vio.Stdin() }
func (o *FsOS) Stdout() io.WriteCloser { return o.vio.Stdout() }
func (o *FsOS) Stderr() io.WriteCloser { return o.vio.Stderr() }

// resolve turns a possibly relative path into a clean absolute one.
// Virtual paths are always slash separated.
func (o *FsOS) resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return path.Clean(path.Join(o.cwd, name))
}

func (o *FsOS) Getwd() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cwd, nil
}

func (o *FsOS) Chdir(dir string) error {
	resolved := o.resolve(dir)

	info, err := o.fs.Stat(resolved)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.cwd = resolved
	return nil
}

func (o *FsOS) Open(name string) (afero.File, error) {
	return o.fs.Open(o.resolve(name))
}

func (o *FsOS) Create(name string) (afero.File, error) {
	return o.fs.Create(o.resolve(name))
}

func (o *FsOS) Stat(name string) (os.FileInfo, error) {
	return o.fs.Stat(o.resolve(name))
}

func (o *FsOS) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(o.fs, o.resolve(name))
}

func (o *FsOS) Mkdir(name string, perm os.FileMode) error {
	return o.fs.Mkdir(o.resolve(name), perm)
}

// MkdirAll normalizes semantics across afero backends: an existing
// directory is silent success, an existing non-directory is ENOTDIR.
func (o *FsOS) MkdirAll(name string, perm os.FileMode) error {
	resolved := o.resolve(name)

	if info, err := o.fs.Stat(resolved); err == nil {
		if info.IsDir() {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}
	}

	return o.fs.MkdirAll(resolved, perm)
}

func (o *FsOS) Remove(name string) error {
	return o.fs.Remove(o.resolve(name))
}

func (o *FsOS) RemoveAll(path string) error {
	return o.fs.RemoveAll(o.resolve(path))
}

func (o *FsOS) Rename(oldname, newname string) error {
	return o.fs.Rename(o.resolve(oldname), o.resolve(newname))
}

func (o *FsOS) Chmod(name string, mode os.FileMode) error {
	return o.fs.Chmod(o.resolve(name), mode)
}

func (o *FsOS) Chtimes(name string, atime, mtime time.Time) error {
	return o.fs.Chtimes(o.resolve(name), atime, mtime)
}

func (o *FsOS) SetPTY(pty PTY) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pty = pty
}

func (o *FsOS) GetPTY() PTY {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pty
}
