package vos

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// VFS holds the filesystem and working-directory operations commands run
// against. The shape mirrors the os package; every path may be relative
// to the current working directory.
type VFS interface {
	Getwd() (string, error)
	Chdir(dir string) error

	Open(name string) (afero.File, error)
	Create(name string) (afero.File, error)
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldname, newname string) error
	Chmod(name string, mode os.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}
