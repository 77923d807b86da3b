package commands

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var cpSpec = &CommandSpec{
	Name:  "cp",
	Use:   "cp SOURCE... DEST",
	Short: "Copy files.",
}

// Cp implements a POSIX cp command for regular files. When the
// destination is an existing directory every source is copied into it
// under its own base name; otherwise exactly one source is copied
// byte-for-byte to the destination path, overwriting it if present.
// Directory sources are not supported.
func Cp(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := cpSpec.simple()

	return cmd.Run(inv, func(out *Output) {
		sources, dest, ok := splitOperands(out, "cp", inv.Args)
		if !ok {
			return
		}
		if !requireDirTarget(virtOS, out, "cp", sources, dest) {
			return
		}

		for _, src := range sources {
			info, err := virtOS.Stat(src)
			switch {
			case err != nil:
				fmt.Fprintf(out.Stderr(), "cp: cannot stat '%s': %s\n", src, errText(err))
				continue
			case info.IsDir():
				fmt.Fprintf(out.Stderr(), "cp: -r not specified; omitting directory '%s'\n", src)
				continue
			}

			target := resolveDest(virtOS, dest, src)
			if err := copyFile(virtOS, src, target, info.Mode().Perm()); err != nil {
				fmt.Fprintf(out.Stderr(), "cp: cannot create regular file '%s': %s\n", target, errText(err))
			}
		}
	})
}

// splitOperands validates the shared cp/mv arity rules and splits the
// operands into sources and destination. Errors are already reported
// when ok is false.
func splitOperands(out *Output, name string, args []string) (sources []string, dest string, ok bool) {
	switch len(args) {
	case 0:
		fmt.Fprintf(out.Stderr(), "%s: missing file operand\n", name)
		return nil, "", false
	case 1:
		fmt.Fprintf(out.Stderr(), "%s: missing destination file operand after '%s'\n", name, args[0])
		return nil, "", false
	}
	return args[:len(args)-1], args[len(args)-1], true
}

// resolveDest implements destination resolution: an existing directory
// target receives the source under its own base name, any other target
// path is used unchanged.
func resolveDest(virtOS vos.VOS, dest, src string) string {
	if info, err := virtOS.Stat(dest); err == nil && info.IsDir() {
		return path.Join(dest, path.Base(src))
	}
	return dest
}

// requireDirTarget reports the classic "target is not a directory" error
// when multiple sources point at a non-directory destination.
func requireDirTarget(virtOS vos.VOS, out *Output, name string, sources []string, dest string) bool {
	if len(sources) <= 1 {
		return true
	}
	if info, err := virtOS.Stat(dest); err == nil && info.IsDir() {
		return true
	}
	fmt.Fprintf(out.Stderr(), "%s: target '%s' is not a directory\n", name, dest)
	return false
}

func copyFile(virtOS vos.VOS, src, dst string, perm os.FileMode) error {
	in, err := virtOS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := virtOS.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return virtOS.Chmod(dst, perm)
}

var _ ProcessFunc = Cp

func init() {
	cpSpec.Run = Cp
	mustRegister(cpSpec)
}
