// Package cmd holds the zerosh command line interface.
package cmd

import (
	"errors"
	"io/fs"
	"os"
	"os/user"

	"github.com/abiosoft/readline"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zero-sh/zerosh/core"
	"github.com/zero-sh/zerosh/core/config"
	"github.com/zero-sh/zerosh/core/vos"
)

var (
	cfgDir  string
	oneShot string
)

// loadConfigOrDefault reads the configuration directory, falling back
// to the built-in defaults when it was never initialized.
func loadConfigOrDefault() (*config.Configuration, error) {
	cfg, err := config.Load(afero.NewOsFs(), cfgDir)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zerosh",
	Short: "A minimal interactive command interpreter.",
	Long: `Zerosh is a minimal interactive command interpreter with a fixed set
of built-in commands. It never launches external programs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		virtualOS := vos.NewHostOS()
		virtualOS.SetPTY(vos.PTY{
			Width: readline.GetScreenWidth(),
			Term:  os.Getenv("TERM"),
			IsPTY: readline.DefaultIsTerminal(),
		})

		if oneShot != "" {
			shell := &core.Shell{VirtualOS: virtualOS, Config: cfg}
			shell.RunLine(oneShot)
			return nil
		}

		shell, err := core.NewShell(virtualOS, cfg)
		if err != nil {
			return err
		}
		defer shell.Close()

		if u, err := user.Current(); err == nil {
			virtualOS.Setenv(core.EnvUser, u.Username)
		}
		if host, err := os.Hostname(); err == nil {
			virtualOS.Setenv(core.EnvHostname, host)
		}

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", ".", "configuration directory")
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "run one line and exit")
}
