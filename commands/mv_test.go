package commands_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-sh/zerosh/core/vos/vostest"
)

func TestMv(t *testing.T) {
	cmd := vostest.Command("mv", "/before", "/after")
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/before", []byte("contents"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)

	_, err := cmd.VOS.Stat("/before")
	assert.ErrorIs(t, err, os.ErrNotExist, "source removed")

	data, err := afero.ReadFile(cmd.Fs(), "/after")
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))
}

func TestMv_intoDirectory(t *testing.T) {
	cmd := vostest.Command("mv", "/a.txt", "/b.txt", "/dest")
	require.NoError(t, cmd.Fs().MkdirAll("/dest", 0o755))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/b.txt", []byte("b"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	for _, p := range []string{"/dest/a.txt", "/dest/b.txt"} {
		_, err := cmd.VOS.Stat(p)
		assert.NoError(t, err, p)
	}
	_, err := cmd.VOS.Stat("/a.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMv_directory(t *testing.T) {
	cmd := vostest.Command("mv", "/olddir", "/newdir")
	require.NoError(t, cmd.Fs().MkdirAll("/olddir", 0o755))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/olddir/f", []byte("f"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	_, err := cmd.VOS.Stat("/newdir/f")
	assert.NoError(t, err)
}

func TestMv_errors(t *testing.T) {
	cases := []struct {
		name   string
		argv   []string
		stderr string
	}{
		{"no operands", []string{"mv"}, "mv: missing file operand\n"},
		{"one operand", []string{"mv", "/a.txt"}, "mv: missing destination file operand after '/a.txt'\n"},
		{"multi source non-dir dest", []string{"mv", "/a.txt", "/b.txt", "/a.txt"}, "mv: target '/a.txt' is not a directory\n"},
		{"missing source", []string{"mv", "/ghost", "/out"}, "mv: cannot move '/ghost' to '/out': No such file or directory\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := vostest.Command(tc.argv[0], tc.argv[1:]...)
			require.NoError(t, afero.WriteFile(cmd.Fs(), "/a.txt", []byte("a"), 0o644))
			require.NoError(t, afero.WriteFile(cmd.Fs(), "/b.txt", []byte("b"), 0o644))

			require.NoError(t, cmd.Run())

			assert.Equal(t, tc.stderr, string(cmd.Result.Stderr))
		})
	}
}
