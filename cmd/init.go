package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zero-sh/zerosh/core/config"
)

// initCmd seeds the configuration directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and host key to the configuration directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr())
		return config.Initialize(afero.NewOsFs(), cfgDir, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
