package shell

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/config"
)

// settingsDraft holds the form's working copy of the editable fields as
// strings; nothing is applied until the form completes and validates.
type settingsDraft struct {
	apiBase  string
	interval string
	timeout  string
}

// settingsState is the mutable state behind the settings page.
type settingsState struct {
	form   *huh.Form
	draft  *settingsDraft
	status string
}

// newSettingsState builds a fresh form seeded from the current config.
func newSettingsState(cfg *config.Config) *settingsState {
	draft := &settingsDraft{
		apiBase:  cfg.APIBase,
		interval: cfg.Interval.String(),
		timeout:  cfg.Timeout.String(),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service address").
				Description("Base URL of the FastLogin service").
				Placeholder(config.DefaultAPIBase).
				Value(&draft.apiBase).
				Validate(validateAPIBase),
			huh.NewInput().
				Title("Refresh interval").
				Description("How often the dashboard re-fetches metrics").
				Placeholder("5s").
				Value(&draft.interval).
				Validate(validateInterval),
			huh.NewInput().
				Title("Request timeout").
				Description("Upper bound for each HTTP request").
				Placeholder("4s").
				Value(&draft.timeout).
				Validate(validateTimeout),
		),
	).WithShowHelp(false)

	return &settingsState{form: form, draft: draft}
}

// active reports whether the form is still collecting input.
func (s *settingsState) active() bool {
	return s.form.State == huh.StateNormal
}

func validateAPIBase(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("service address is required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL like %s", config.DefaultAPIBase)
	}
	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 5s or 500ms")
	}
	if d < config.MinInterval {
		return fmt.Errorf("must be at least %s", config.MinInterval)
	}
	return nil
}

func validateTimeout(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 4s")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// applySettings commits a completed form: saves the config file and points
// the client and poller at the new values. The poller is not running here
// (only the dashboard page polls), so Reconfigure just swaps it in place.
func (m *Model) applySettings() {
	draft := m.settings.draft

	// The form validated these already.
	interval, _ := time.ParseDuration(strings.TrimSpace(draft.interval))
	timeout, _ := time.ParseDuration(strings.TrimSpace(draft.timeout))

	m.cfg.APIBase = strings.TrimSpace(draft.apiBase)
	m.cfg.Interval = interval
	m.cfg.Timeout = timeout

	status := "Saved"
	if err := config.Save(m.cfg, m.cfgPath); err != nil {
		status = "Save failed: " + err.Error()
	} else if m.cfgPath != "" {
		status = "Saved to " + m.cfgPath
	}

	m.client = api.NewClient(m.cfg.APIBase, m.cfg.Timeout)
	m.poller.Reconfigure(m.client, m.cfg.Interval)

	// Re-arm the form so the page stays editable.
	m.settings = newSettingsState(m.cfg)
	m.settings.status = status
}

// renderSettings draws the settings form page.
func (m Model) renderSettings() string {
	if m.settings == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.settings.form.View())
	if m.settings.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusOKStyle.Render("  " + m.settings.status))
	}
	return b.String()
}
