package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Persistent flags shared by all commands
var (
	configFlag  string
	noColorFlag bool
)

// Root-only flags overriding config for a single run
var (
	apiFlag      string
	intervalFlag string
)

// rootCmd is the base command; running it with no subcommand opens the
// dashboard shell.
var rootCmd = &cobra.Command{
	Use:   "easidesk",
	Short: "Terminal dashboard for the FastLogin service",
	Long: `easidesk is a terminal dashboard for a locally running FastLogin service.

It polls the service's metrics endpoint on a fixed cadence and renders
account counts, request rates, and the activity feed. Saved logins are
browsable on a separate page, and connection settings can be edited
in-app.

Examples:
  easidesk                  open the dashboard
  easidesk init             create a config file
  easidesk serve            run a local stub service for development`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCommand(configFlag, apiFlag, intervalFlag)
	},
}

// Execute runs the root command. Structured errors print their message and
// suggestion; anything else prints as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .easidesk.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&apiFlag, "api", "", "service address, overrides config for this run")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval, overrides config (e.g. 5s)")
}
