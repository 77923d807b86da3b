package core

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gliderlabs/ssh"
	"github.com/spf13/afero"
	"github.com/zero-sh/zerosh/core/config"
	"github.com/zero-sh/zerosh/core/vos"
)

// Server exposes the interpreter over SSH. Every session gets its own
// in-memory filesystem, so nothing a remote user does can touch the
// host or another session.
type Server struct {
	cfg    *config.Configuration
	logger *log.Logger
	ssh    *ssh.Server
}

func NewServer(cfg *config.Configuration, logger *log.Logger) *Server {
	srv := &Server{
		cfg:    cfg,
		logger: logger,
	}
	srv.ssh = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: func(sess ssh.Session) {
			srv.handleSession(sess)
		},
	}
	return srv
}

// SetHostKey points the server at a PEM encoded private key on disk.
func (s *Server) SetHostKey(path string) {
	s.ssh.SetOption(ssh.HostKeyFile(path))
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.ssh.Addr)
	return s.ssh.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.ssh.Shutdown(ctx)
}

func (s *Server) handleSession(sess ssh.Session) {
	s.logger.Info("session started",
		"user", sess.User(),
		"remote", sess.RemoteAddr().String())

	virtualOS := newSessionOS(sess)

	// Sessions never share the host's history file.
	sessionCfg := *s.cfg
	sessionCfg.HistoryFile = ""

	shell, err := NewShell(virtualOS, &sessionCfg)
	if err != nil {
		s.logger.Error("session setup failed", "error", err)
		sess.Exit(1)
		return
	}
	defer shell.Close()

	shell.Init(sess.User())

	if motd := s.cfg.SSH.Motd; motd != "" {
		fmt.Fprint(sess, motd)
	}

	if err := shell.Run(); err != nil {
		s.logger.Error("session failed", "user", sess.User(), "error", err)
		sess.Exit(1)
		return
	}

	s.logger.Info("session ended", "user", sess.User())
	sess.Exit(0)
}

// newSessionOS builds a sandboxed OS over a fresh in-memory filesystem
// wired to the session's streams and PTY.
func newSessionOS(sess ssh.Session) *vos.FsOS {
	vio := vos.NewVIOAdapter(sess, sess, sess.Stderr())
	virtualOS := vos.NewFsOS(afero.NewMemMapFs(), vio)

	ptyReq, winCh, isPty := sess.Pty()
	virtualOS.SetPTY(vos.PTY{
		Width:  ptyReq.Window.Width,
		Height: ptyReq.Window.Height,
		Term:   ptyReq.Term,
		IsPTY:  isPty,
	})
	go func() {
		for win := range winCh {
			pty := virtualOS.GetPTY()
			pty.Width = win.Width
			pty.Height = win.Height
			virtualOS.SetPTY(pty)
		}
	}()

	if user := sess.User(); user != "" {
		virtualOS.Fs().MkdirAll("/home/"+user, 0o755)
	}

	return virtualOS
}
