package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	APIBase        string // Pre-specified service address
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .easidesk.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	apiBase := opts.APIBase
	interval := "5s"

	if opts.NonInteractive {
		if apiBase == "" {
			apiBase = config.DefaultAPIBase
		}
	} else {
		if apiBase == "" {
			apiBase = config.DefaultAPIBase
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Service address").
					Description("Base URL of the FastLogin service").
					Placeholder(config.DefaultAPIBase).
					Value(&apiBase).
					Validate(func(s string) error {
						s = strings.TrimSpace(s)
						if s == "" {
							return fmt.Errorf("service address is required")
						}
						u, err := url.Parse(s)
						if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
							return fmt.Errorf("must be an http(s) URL")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often the dashboard re-fetches metrics").
					Placeholder("5s").
					Value(&interval).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("use a duration like 5s or 500ms")
						}
						if d < config.MinInterval {
							return fmt.Errorf("must be at least %s", config.MinInterval)
						}
						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
	}

	// Build config
	cfg := config.DefaultConfig()
	cfg.APIBase = strings.TrimSpace(apiBase)
	if d, err := time.ParseDuration(strings.TrimSpace(interval)); err == nil {
		cfg.Interval = d
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  easidesk          - Open the dashboard")
	fmt.Println("  easidesk serve    - Run a local stub service")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(apiBaseFlag string, force, nonInteractive bool) error {
	return Init(InitOptions{
		APIBase:        apiBaseFlag,
		Overwrite:      force,
		NonInteractive: nonInteractive,
	})
}
