package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

var lsSpec = &CommandSpec{
	Name:  "ls",
	Use:   "ls [-alF] [FILE]...",
	Short: "List information about files (the current directory by default).",
}

// Ls implements the POSIX ls command.
//
// Entries are sorted by name and names starting with "." are hidden
// unless -a is given. -l switches to one line per entry with the mode
// string, size in bytes and modification time. -F appends "/" to
// directories and "*" to executable regular files. With more than one
// path, every listing gets a "path:" header; a path that cannot be read
// produces an error line and the remaining paths are still listed.
func Ls(virtOS vos.VOS, inv shell.Invocation) Result {
	cmd := lsSpec.simple()
	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	longListing := cmd.Flags().Bool('l', "use a long listing format")
	classify := cmd.Flags().Bool('F', "append indicator (one of */) to entries")

	return cmd.Run(inv, func(out *Output) {
		targets := inv.Args
		if len(targets) == 0 {
			targets = []string{"."}
		}
		sort.Strings(targets)
		showHeaders := len(targets) > 1

		for _, target := range targets {
			info, err := virtOS.Stat(target)
			if err != nil {
				fmt.Fprintf(out.Stderr(), "ls: cannot access '%s': %s\n", target, errText(err))
				continue
			}

			if showHeaders {
				fmt.Fprintf(out.Stdout(), "%s:\n", target)
			}

			// A non-directory target lists itself under the name given.
			if !info.IsDir() {
				printEntries(out.Stdout(), []lsEntry{{name: target, info: info}}, *longListing, *classify)
				continue
			}

			infos, err := virtOS.ReadDir(target)
			if err != nil {
				fmt.Fprintf(out.Stderr(), "ls: cannot access '%s': %s\n", target, errText(err))
				continue
			}

			var entries []lsEntry
			for _, fi := range infos {
				if !*listAll && strings.HasPrefix(fi.Name(), ".") {
					continue
				}
				entries = append(entries, lsEntry{name: fi.Name(), info: fi})
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].name < entries[j].name
			})

			printEntries(out.Stdout(), entries, *longListing, *classify)
		}
	})
}

type lsEntry struct {
	name string
	info os.FileInfo
}

// displayName renders the entry name with the optional -F indicator.
func (e lsEntry) displayName(classify bool) string {
	if !classify {
		return e.name
	}
	switch {
	case e.info.IsDir():
		return e.name + "/"
	case e.info.Mode().IsRegular() && e.info.Mode().Perm()&0o111 != 0:
		return e.name + "*"
	}
	return e.name
}

func printEntries(w io.Writer, entries []lsEntry, long, classify bool) {
	if !long {
		for _, e := range entries {
			fmt.Fprintln(w, e.displayName(classify))
		}
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			e.info.Mode().String(),
			e.info.Size(),
			e.info.ModTime().Format("Jan 02 15:04"),
			e.displayName(classify))
	}
	tw.Flush()
}

var _ ProcessFunc = Ls

func init() {
	lsSpec.Run = Ls
	mustRegister(lsSpec)
}
