package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
)

// Initialize populates dir with a default configuration and a generated
// SSH host key. Files that already exist are left alone so it is safe to
// run repeatedly.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	if err := writeIfMissing(fsys, configPath, defaultConfigData, 0o644, logger); err != nil {
		return err
	}

	keyPath := filepath.Join(dir, HostKeyName)
	if exists, err := afero.Exists(fsys, keyPath); err != nil {
		return err
	} else if exists {
		logger.Info("already exists, skipping", "path", keyPath)
		return nil
	}

	keyPem, err := generateHostKey()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, keyPath, keyPem, 0o600); err != nil {
		return err
	}
	logger.Info("generated host key", "path", keyPath)
	return nil
}

func writeIfMissing(fsys afero.Fs, path string, data []byte, perm os.FileMode, logger *log.Logger) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("already exists, skipping", "path", path)
		return nil
	}
	if err := afero.WriteFile(fsys, path, data, perm); err != nil {
		return err
	}
	logger.Info("wrote", "path", path)
	return nil
}

// generateHostKey creates a PEM encoded ed25519 private key for the SSH
// front end.
func generateHostKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	block, err := ssh.MarshalPrivateKey(priv, "")
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(block), nil
}
