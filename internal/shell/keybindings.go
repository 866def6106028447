package shell

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyNextPage   = "tab"
	KeyPrevPage   = "shift+tab"
	KeyDashboard  = "1"
	KeyAccounts   = "2"
	KeySettings   = "3"
	KeyAbout      = "4"
	KeyToggleHelp = "?"
	KeyDismiss    = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled, false otherwise. The
// settings page intercepts most keys before this runs (see Update) so that
// typing into form fields works.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyDismiss {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyNextPage:
		return true, m.setPage(m.page.Next())

	case KeyPrevPage:
		return true, m.setPage(m.page.Prev())

	case KeyDashboard:
		return true, m.setPage(PageDashboard)

	case KeyAccounts:
		return true, m.setPage(PageAccounts)

	case KeySettings:
		return true, m.setPage(PageSettings)

	case KeyAbout:
		return true, m.setPage(PageAbout)

	case KeyRefresh:
		if m.page == PageAccounts {
			m.accountsLoading = true
			return true, m.fetchAccountsCmd()
		}
		return true, nil
	}

	return false, nil
}
