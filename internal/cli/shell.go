package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/errors"
	"github.com/easilogin/easidesk/internal/logger"
	"github.com/easilogin/easidesk/internal/poller"
	"github.com/easilogin/easidesk/internal/shell"
)

// shellCommand opens the dashboard TUI. A missing config file is fine; the
// shell runs against the default local service address. apiBase and
// interval, when non-empty, override the config for this run only.
func shellCommand(configPath, apiBase, interval string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if apiBase != "" {
		cfg.APIBase = apiBase
	}
	if interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", interval),
				"Use a valid duration like 5s or 500ms")
		}
		cfg.Interval = parsed
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Remember where the config came from so in-app settings save back
	// to the same file.
	cfgPath, _ := config.Find(configPath)

	client := api.NewClient(cfg.APIBase, cfg.Timeout)
	p := poller.New(client, cfg.Interval, poller.WithLogger(logger.Default()))

	model := shell.NewModel(cfg, cfgPath, client, p, version)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Poller callbacks fire on the poller's goroutine; the bridge
	// marshals them onto the UI loop.
	bridge := shell.NewBridge(program)
	p.OnUpdate(bridge.SnapshotUpdated)

	_, err = program.Run()
	p.Stop()
	return err
}
