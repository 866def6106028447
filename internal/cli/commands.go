package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/easilogin/easidesk/internal/errors"
)

// Command-specific flags
var (
	initAPIBaseFlag    string
	initForce          bool
	initNonInteractive bool
	serveAddrFlag      string
	servePortFlag      int
)

// initCmd creates a new .easidesk.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .easidesk.yaml configuration",
	Long: `Initialize a new easidesk configuration file.

Creates a .easidesk.yaml file in the current directory with sensible
defaults. Guides you through service address and refresh interval with
interactive prompts.

Examples:
  easidesk init
  easidesk init --api-base http://127.0.0.1:24300
  easidesk init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initAPIBaseFlag, initForce, initNonInteractive)
	},
}

// serveCmd runs the local stub FastLogin service
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local stub FastLogin service",
	Long: `Run a minimal local implementation of the FastLogin API.

Serves /metrics, /getData/SSOLOGIN, and /savedata with seeded accounts
and live request counters. Useful for developing against the dashboard
without a real service.

Examples:
  easidesk serve
  easidesk serve --port 24300
  easidesk serve --addr 0.0.0.0 --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(configFlag, serveAddrFlag, servePortFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for easidesk.

Examples:
  # Bash
  easidesk completion bash > /etc/bash_completion.d/easidesk

  # Zsh
  easidesk completion zsh > "${fpath[1]}/_easidesk"

  # Fish
  easidesk completion fish > ~/.config/fish/completions/easidesk.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initAPIBaseFlag, "api-base", "", "pre-specify the service address")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")

	// serve command flags
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "interface to bind (default from config)")
	serveCmd.Flags().IntVar(&servePortFlag, "port", 0, "port to listen on (default from config)")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(completionCmd)
}
