package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/easilogin/easidesk/internal/api"
)

// newAccountsTable builds the saved-logins table with shell styling.
func newAccountsTable() table.Model {
	columns := []table.Column{
		{Title: "Nickname", Width: 20},
		{Title: "User ID", Width: 16},
		{Title: "Name", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorTextSecondary)
	s.Cell = s.Cell.
		Foreground(ColorTextPrimary)
	s.Selected = s.Selected.
		Foreground(ColorTextPrimary).
		Background(ColorBorder).
		Bold(false)
	t.SetStyles(s)

	return t
}

// accountRows converts accounts to table rows.
func accountRows(accounts []api.Account) []table.Row {
	rows := make([]table.Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, table.Row{a.Nickname, a.UserID, a.RealName})
	}
	return rows
}

// renderAccounts draws the saved-logins page.
func (m Model) renderAccounts() string {
	var b strings.Builder

	switch {
	case m.accountsLoading && len(m.accounts) == 0:
		b.WriteString(StatusMutedStyle.Render("  loading accounts..."))
	case m.accountsErr != "" && len(m.accounts) == 0:
		b.WriteString(LogLevelWarnStyle.Render("  could not load accounts: " + m.accountsErr))
	case len(m.accounts) == 0:
		b.WriteString(StatusMutedStyle.Render("  no saved logins"))
	default:
		b.WriteString(m.accountsTable.View())
		b.WriteString("\n")
		b.WriteString(StatusMutedStyle.Render(fmt.Sprintf("  %d saved login(s)", len(m.accounts))))
		if m.accountsErr != "" {
			// Refresh failed; keep showing the last good list.
			b.WriteString(LogLevelWarnStyle.Render("  (refresh failed: " + m.accountsErr + ")"))
		}
	}

	return b.String()
}
