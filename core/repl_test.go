package core

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-sh/zerosh/core/config"
	"github.com/zero-sh/zerosh/core/vos"
)

type replFixture struct {
	shell  *Shell
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newReplFixture(t *testing.T) *replFixture {
	t.Helper()

	f := &replFixture{}
	vio := vos.NewVIOAdapter(bytes.NewReader(nil), &f.stdout, &f.stderr)
	f.shell = &Shell{
		VirtualOS: vos.NewFsOS(afero.NewMemMapFs(), vio),
		Config:    config.Default(),
	}
	return f
}

func TestRunLine(t *testing.T) {
	f := newReplFixture(t)

	exit := f.shell.RunLine("echo hello world")

	assert.False(t, exit)
	assert.Equal(t, "hello world\n", f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestRunLine_semicolonSequence(t *testing.T) {
	f := newReplFixture(t)

	exit := f.shell.RunLine("mkdir /a; cd /a; pwd")

	assert.False(t, exit)
	assert.Equal(t, "/a\n", f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestRunLine_quotedSemicolon(t *testing.T) {
	f := newReplFixture(t)

	f.shell.RunLine(`echo "a;b"`)

	assert.Equal(t, "a;b\n", f.stdout.String())
}

func TestRunLine_emptyCommandContinues(t *testing.T) {
	f := newReplFixture(t)

	exit := f.shell.RunLine(`""; pwd`)

	assert.False(t, exit)
	assert.Equal(t, "zerosh: empty command\n", f.stderr.String())
	assert.Equal(t, "/\n", f.stdout.String(), "later segments still run")
}

func TestRunLine_unterminatedQuote(t *testing.T) {
	f := newReplFixture(t)

	f.shell.RunLine(`echo "oops`)

	assert.Equal(t, "zerosh: unterminated quoted string\n", f.stderr.String())
	assert.Empty(t, f.stdout.String())
}

func TestRunLine_unknownCommand(t *testing.T) {
	f := newReplFixture(t)

	f.shell.RunLine("launch-missiles")

	assert.Equal(t, "Command 'launch-missiles' not found\n", f.stderr.String())
}

func TestRunLine_exit(t *testing.T) {
	f := newReplFixture(t)

	assert.True(t, f.shell.RunLine("exit"))
	assert.True(t, f.shell.RunLine("echo before; exit; echo after"))
	assert.Equal(t, "before\n", f.stdout.String(), "nothing runs after exit")
}

func TestRunLine_blankLine(t *testing.T) {
	f := newReplFixture(t)

	assert.False(t, f.shell.RunLine("   "))
	assert.Empty(t, f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestShellInit(t *testing.T) {
	f := newReplFixture(t)
	require.NoError(t, f.shell.VirtualOS.(*vos.FsOS).Fs().MkdirAll("/home/alice", 0o755))

	f.shell.Init("alice")

	assert.Equal(t, "/home/alice", f.shell.VirtualOS.Getenv(EnvHome))
	assert.Equal(t, "alice", f.shell.VirtualOS.Getenv(EnvUser))
	wd, err := f.shell.VirtualOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice", wd)
}

func TestPrompt(t *testing.T) {
	f := newReplFixture(t)
	f.shell.Config.Color = "never"
	f.shell.Config.Hostname = "worker1"
	require.NoError(t, f.shell.VirtualOS.(*vos.FsOS).Fs().MkdirAll("/home/bob/src", 0o755))
	f.shell.Init("bob")
	require.NoError(t, f.shell.VirtualOS.Chdir("/home/bob/src"))

	assert.Equal(t, "bob@worker1:~/src$ ", f.shell.Prompt())
}

func TestPrompt_root(t *testing.T) {
	f := newReplFixture(t)
	f.shell.Config.Color = "never"
	f.shell.Config.Hostname = "worker1"
	require.NoError(t, f.shell.VirtualOS.(*vos.FsOS).Fs().MkdirAll("/root", 0o755))
	f.shell.Init("root")

	assert.Equal(t, "root@worker1:~# ", f.shell.Prompt())
}

func TestPrompt_colorAlways(t *testing.T) {
	f := newReplFixture(t)
	f.shell.Config.Color = "always"
	f.shell.Init("bob")

	assert.Contains(t, f.shell.Prompt(), "\x1b[", "ANSI sequences expected")
}
