package commands_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-sh/zerosh/core/vos/vostest"
)

func TestCd(t *testing.T) {
	cmd := vostest.Command("cd", "/srv/www")
	require.NoError(t, cmd.Fs().MkdirAll("/srv/www", 0o755))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	wd, err := cmd.VOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/srv/www", wd)
}

func TestCd_home(t *testing.T) {
	cmd := vostest.Command("cd")
	require.NoError(t, cmd.Fs().MkdirAll("/home/alice", 0o755))
	cmd.VOS.Setenv("HOME", "/home/alice")

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	wd, err := cmd.VOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice", wd)
}

func TestCd_homeUnsetFallsBackToRoot(t *testing.T) {
	cmd := vostest.Command("cd")
	require.NoError(t, cmd.Fs().MkdirAll("/tmp", 0o755))
	require.NoError(t, cmd.VOS.Chdir("/tmp"))

	require.NoError(t, cmd.Run())

	assert.Empty(t, cmd.Result.Stderr)
	wd, err := cmd.VOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/", wd)
}

func TestCd_errors(t *testing.T) {
	cases := []struct {
		name   string
		argv   []string
		stderr string
	}{
		{"missing directory", []string{"cd", "/nope"}, "cd: /nope: No such file or directory\n"},
		{"not a directory", []string{"cd", "/plain.txt"}, "cd: /plain.txt: not a directory\n"},
		{"too many arguments", []string{"cd", "a", "b"}, "cd: too many arguments\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := vostest.Command(tc.argv[0], tc.argv[1:]...)
			require.NoError(t, afero.WriteFile(cmd.Fs(), "/plain.txt", []byte("x"), 0o644))

			require.NoError(t, cmd.Run())

			assert.Equal(t, tc.stderr, string(cmd.Result.Stderr))
			wd, err := cmd.VOS.Getwd()
			require.NoError(t, err)
			assert.Equal(t, "/", wd, "working directory unchanged on failure")
		})
	}
}

func TestPwd(t *testing.T) {
	cmd := vostest.Command("pwd")
	require.NoError(t, cmd.Fs().MkdirAll("/var/log", 0o755))
	require.NoError(t, cmd.VOS.Chdir("/var/log"))

	require.NoError(t, cmd.Run())

	assert.Equal(t, "/var/log\n", string(cmd.Result.Stdout))
	assert.Empty(t, cmd.Result.Stderr)
}

func TestExit(t *testing.T) {
	cmd := vostest.Command("exit", "these", "are", "ignored")
	require.NoError(t, cmd.Run())

	assert.True(t, cmd.Result.ShouldExit)
	assert.Empty(t, cmd.Result.Stdout)
	assert.Empty(t, cmd.Result.Stderr)
}
