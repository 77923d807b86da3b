package commands_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-sh/zerosh/core/vos/vostest"
)

func TestRm(t *testing.T) {
	cmd := vostest.Command("rm", "/a.txt", "/b.txt")
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/b.txt", []byte("b"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	for _, p := range []string{"/a.txt", "/b.txt"} {
		_, err := cmd.VOS.Stat(p)
		assert.ErrorIs(t, err, os.ErrNotExist, p)
	}
}

func TestRm_directoryNeedsRecursive(t *testing.T) {
	cmd := vostest.Command("rm", "/dir", "/a.txt")
	require.NoError(t, cmd.Fs().MkdirAll("/dir", 0o755))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/dir/keep", []byte("k"), 0o644))
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/a.txt", []byte("a"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Equal(t, "rm: cannot remove '/dir': Is a directory\n", string(cmd.Result.Stderr))

	// The directory and its contents are untouched.
	_, err := cmd.VOS.Stat("/dir/keep")
	assert.NoError(t, err)

	// Later operands still get removed.
	_, err = cmd.VOS.Stat("/a.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRm_recursive(t *testing.T) {
	for _, flag := range []string{"-r", "-R"} {
		t.Run(flag, func(t *testing.T) {
			cmd := vostest.Command("rm", flag, "/dir")
			require.NoError(t, cmd.Fs().MkdirAll("/dir/nested", 0o755))
			require.NoError(t, afero.WriteFile(cmd.Fs(), "/dir/nested/f", []byte("f"), 0o644))

			require.NoError(t, cmd.Run())

			assert.Empty(t, cmd.Result.Stderr)
			_, err := cmd.VOS.Stat("/dir")
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestRm_missingOperand(t *testing.T) {
	cmd := vostest.Command("rm")
	require.NoError(t, cmd.Run())

	assert.Equal(t, "rm: missing operand\n", string(cmd.Result.Stderr))
}

func TestRm_missingFileContinues(t *testing.T) {
	cmd := vostest.Command("rm", "/ghost", "/a.txt")
	require.NoError(t, afero.WriteFile(cmd.Fs(), "/a.txt", []byte("a"), 0o644))

	require.NoError(t, cmd.Run())

	assert.Equal(t, "rm: cannot remove '/ghost': No such file or directory\n", string(cmd.Result.Stderr))
	_, err := cmd.VOS.Stat("/a.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
