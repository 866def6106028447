package shell

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/poller"
)

// accountsFetchTimeout bounds the one-shot accounts request issued when the
// accounts page mounts or is refreshed.
const accountsFetchTimeout = 4 * time.Second

// Model is the Bubble Tea model for the easidesk shell. It hosts four
// pages; only the dashboard keeps the metrics poller running, so switching
// away stops polling and switching back resumes from last-known-good state.
type Model struct {
	cfg     *config.Config
	cfgPath string
	client  *api.Client
	poller  *poller.Poller
	version string

	page     Page
	width    int
	height   int
	quitting bool
	showHelp bool

	// Dashboard state
	view         poller.ViewState
	haveSnapshot bool
	lastUpdate   time.Time
	spin         spinner.Model
	logViewport  viewport.Model
	logsReady    bool

	// Accounts state
	accounts        []api.Account
	accountsErr     string
	accountsLoading bool
	accountsTable   table.Model

	// Settings state. Heap-allocated so the huh form survives the value
	// copies Bubble Tea makes of the model.
	settings *settingsState
}

// NewModel creates the shell model. cfgPath is where settings are saved;
// empty means the default config location.
func NewModel(cfg *config.Config, cfgPath string, client *api.Client, p *poller.Poller, version string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		cfg:           cfg,
		cfgPath:       cfgPath,
		client:        client,
		poller:        p,
		version:       version,
		page:          PageDashboard,
		view:          p.State(),
		spin:          sp,
		accountsTable: newAccountsTable(),
	}
}

// Init starts the poller for the initial dashboard page and kicks off the
// UI chrome timers.
func (m Model) Init() tea.Cmd {
	m.poller.Start()
	return tea.Batch(m.spin.Tick, m.uiTickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The settings form owns the keyboard while it is active; only
		// quit and esc stay global so fields remain typeable.
		if m.page == PageSettings && m.settings != nil && m.settings.active() {
			switch msg.String() {
			case KeyQuitAlt:
				m.quitting = true
				return m, tea.Quit
			case KeyDismiss:
				return m, m.setPage(PageDashboard)
			}
			return m.updateSettings(msg)
		}

		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SnapshotMsg:
		m.view = msg.View
		m.haveSnapshot = true
		m.lastUpdate = msg.Time
		if m.logsReady {
			m.logViewport.SetContent(m.renderLogLines())
		}

	case uiTickMsg:
		return m, m.uiTickCmd()

	case spinner.TickMsg:
		// Only animate while the dashboard is waiting for its first
		// snapshot.
		if m.page == PageDashboard && !m.haveSnapshot {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case accountsMsg:
		m.accountsLoading = false
		m.accountsErr = ""
		m.accounts = msg.accounts
		m.accountsTable.SetRows(accountRows(m.accounts))

	case accountsErrMsg:
		m.accountsLoading = false
		m.accountsErr = msg.err

	default:
		if m.page == PageSettings && m.settings != nil && m.settings.active() {
			return m.updateSettings(msg)
		}
	}

	// Let the focused widget consume navigation keys and scrolling.
	var cmd tea.Cmd
	switch m.page {
	case PageDashboard:
		if m.logsReady {
			m.logViewport, cmd = m.logViewport.Update(msg)
		}
	case PageAccounts:
		m.accountsTable, cmd = m.accountsTable.Update(msg)
	}
	return m, cmd
}

// setPage switches to the given page, managing the poller and per-page
// setup. Leaving the dashboard stops polling; any in-flight fetch is
// discarded before the switch completes.
func (m *Model) setPage(p Page) tea.Cmd {
	if p == m.page {
		return nil
	}

	if m.page == PageDashboard {
		m.poller.Stop()
	}
	m.page = p

	switch p {
	case PageDashboard:
		m.poller.Start()
		m.view = m.poller.State()
		if m.logsReady {
			m.logViewport.SetContent(m.renderLogLines())
		}
		if !m.haveSnapshot {
			return m.spin.Tick
		}

	case PageAccounts:
		m.accountsLoading = true
		return m.fetchAccountsCmd()

	case PageSettings:
		m.settings = newSettingsState(m.cfg)
		return m.settings.form.Init()
	}

	return nil
}

// resize propagates the terminal size to the per-page widgets.
func (m *Model) resize() {
	// Header (title + tabs) and footer each take fixed rows; cards take
	// another block above the log viewport.
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	logHeight := bodyHeight - cardBlockHeight - 2
	if logHeight < 3 {
		logHeight = 3
	}

	if !m.logsReady {
		m.logViewport = viewport.New(m.width, logHeight)
		m.logsReady = true
		m.logViewport.SetContent(m.renderLogLines())
	} else {
		m.logViewport.Width = m.width
		m.logViewport.Height = logHeight
	}

	tableHeight := bodyHeight - 2
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.accountsTable.SetWidth(m.width)
	m.accountsTable.SetHeight(tableHeight)
	if m.settings != nil {
		m.settings.form = m.settings.form.WithWidth(min(m.width-4, 72))
	}
}

// updateSettings forwards a message to the active settings form and reacts
// when the form completes.
func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.settings.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settings.form = f
	}

	if m.settings.form.State == huh.StateCompleted {
		m.applySettings()
		return m, m.settings.form.Init()
	}
	return m, cmd
}

// fetchAccountsCmd issues a one-shot accounts fetch off the UI loop.
func (m Model) fetchAccountsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), accountsFetchTimeout)
		defer cancel()

		accounts, err := client.ListAccounts(ctx)
		if err != nil {
			return accountsErrMsg{err: err.Error()}
		}
		return accountsMsg{accounts: accounts}
	}
}

// uiTickCmd drives the once-per-second header refresh ("updated Ns ago").
func (m Model) uiTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return uiTickMsg(t)
	})
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// applied snapshot.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// CurrentPage returns the active page.
func (m Model) CurrentPage() Page {
	return m.page
}
