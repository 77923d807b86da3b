package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	"github.com/zero-sh/zerosh/core"
	"github.com/zero-sh/zerosh/core/config"
)

// serveCmd exposes the interpreter over SSH.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interpreter over SSH on the configured port.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr())

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		if cfg.SSH.Port == 0 {
			return errors.New("ssh.port is 0, nothing to serve")
		}

		server := core.NewServer(cfg, logger)
		if keyPath := filepath.Join(cfgDir, config.HostKeyName); fileExists(keyPath) {
			server.SetHostKey(keyPath)
		} else {
			logger.Warn("no host key found, using an ephemeral key", "path", keyPath)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigs:
			logger.Info("terminating", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		logger.Info("server exited")
		return nil
	},
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
