// Package core drives the read-eval-print loop over a virtual OS and
// hosts the session front ends.
package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/zero-sh/zerosh/commands"
	"github.com/zero-sh/zerosh/core/config"
	"github.com/zero-sh/zerosh/core/shell"
	"github.com/zero-sh/zerosh/core/vos"
)

const (
	EnvHome     = "HOME"
	EnvUser     = "USER"
	EnvHostname = "HOSTNAME"
)

// Shell is one interactive interpreter session.
type Shell struct {
	VirtualOS vos.VOS
	Config    *config.Configuration
	Readline  *readline.Instance
}

// NewShell builds an interactive session reading from the virtual OS's
// streams. The readline instance tracks the session's PTY for width and
// terminal detection.
func NewShell(virtualOS vos.VOS, cfg *config.Configuration) (*Shell, error) {
	rlCfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(virtualOS.Stdin()),
		Stdout:      virtualOS.Stdout(),
		Stderr:      virtualOS.Stderr(),
		HistoryFile: cfg.HistoryFile,
		FuncGetWidth: func() int {
			return virtualOS.GetPTY().Width
		},
		FuncIsTerminal: func() bool {
			return virtualOS.GetPTY().IsPTY
		},
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		VirtualOS: virtualOS,
		Config:    cfg,
		Readline:  rl,
	}, nil
}

// Init sets up the session environment for the named user, similar to
// login.
func (s *Shell) Init(username string) {
	homedir := "/"
	if username != "" {
		homedir = "/home/" + username
		if username == "root" {
			homedir = "/root"
		}
	}

	s.VirtualOS.Setenv(EnvHome, homedir)
	// Use chdir in case the dir doesn't exist.
	_ = s.VirtualOS.Chdir(homedir)

	s.VirtualOS.Setenv(EnvUser, username)
	s.VirtualOS.Setenv(EnvHostname, s.Config.Hostname)
}

// Run reads and evaluates lines until the input closes or a command
// requests exit.
func (s *Shell) Run() error {
	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// Input closed, quit.
			return nil

		case err == readline.ErrInterrupt:
			// ^C abandons the current line but keeps the session.
			continue

		case err != nil:
			return err
		}

		if s.RunLine(line) {
			return nil
		}
	}
}

// RunLine evaluates one input line, which may hold several commands
// separated by semicolons. It reports whether the session should end.
func (s *Shell) RunLine(line string) bool {
	for _, segment := range shell.Split(line) {
		inv, err := shell.BuildInvocation(segment)
		if err != nil {
			fmt.Fprintf(s.VirtualOS.Stderr(), "zerosh: %v\n", err)
			continue
		}

		res := commands.Execute(s.VirtualOS, inv.Name, inv.Flags, inv.Args)
		if len(res.Stdout) > 0 {
			s.VirtualOS.Stdout().Write(res.Stdout)
		}
		if len(res.Stderr) > 0 {
			s.VirtualOS.Stderr().Write(res.Stderr)
		}
		if res.ShouldExit {
			return true
		}
	}
	return false
}

// Prompt renders the configured prompt template. \u, \h, \w and \$
// expand to the user, hostname, working directory and sigil; the
// working directory under $HOME is abbreviated with a tilde.
func (s *Shell) Prompt() string {
	prompt := s.Config.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	user := s.VirtualOS.Getenv(EnvUser)
	host := s.VirtualOS.Getenv(EnvHostname)
	if host == "" {
		host = s.Config.Hostname
	}

	pwd, _ := s.VirtualOS.Getwd()
	if home := s.VirtualOS.Getenv(EnvHome); home != "" {
		if pwd == home || strings.HasPrefix(pwd, home+"/") {
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
	}

	sigil := "$"
	if user == "root" {
		sigil = "#"
	}

	prompt = strings.ReplaceAll(prompt, `\u`, s.paint(color.FgGreen, color.Bold)(user))
	prompt = strings.ReplaceAll(prompt, `\h`, s.paint(color.FgGreen, color.Bold)(host))
	prompt = strings.ReplaceAll(prompt, `\w`, s.paint(color.FgBlue, color.Bold)(pwd))
	prompt = strings.ReplaceAll(prompt, `\$`, sigil)

	return prompt
}

// paint returns a sprint function honoring the session's color setting.
func (s *Shell) paint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if s.shouldColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func (s *Shell) shouldColor() bool {
	switch s.Config.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return s.VirtualOS.GetPTY().IsPTY
	}
}

// Close releases the readline resources.
func (s *Shell) Close() error {
	return s.Readline.Close()
}
