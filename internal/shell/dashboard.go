package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard draws the metric cards and the activity log.
func (m Model) renderDashboard() string {
	if !m.haveSnapshot {
		return "\n  " + m.spin.View() + StatusMutedStyle.Render(" connecting to "+m.client.Base()) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(SectionTitleStyle.Render(" Activity"))
	b.WriteString("\n")
	if m.logsReady {
		b.WriteString(m.logViewport.View())
	} else {
		b.WriteString(m.renderLogLines())
	}
	return b.String()
}

// renderCards draws the five counter cards in a row.
func (m Model) renderCards() string {
	cards := []string{
		m.renderCard("Accounts", m.view.AccountsTotal),
		m.renderCard("Cached logins", m.view.CachedLogins),
		m.renderCard("Requests 24h", m.view.Requests24h),
		m.renderCard("Active tokens", m.view.ActiveTokens),
		m.renderCard("Requests 5m", m.view.Requests5m),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderCard(label string, value int) string {
	content := CardLabelStyle.Render(label) + "\n" +
		CardValueStyle.Render(fmt.Sprintf("%d", value))
	return CardStyle.Render(content)
}

// renderLogLines formats the activity entries newest-first, as sent by the
// service.
func (m Model) renderLogLines() string {
	if len(m.view.Logs) == 0 {
		return StatusMutedStyle.Render("  no activity yet")
	}

	lines := make([]string, 0, len(m.view.Logs))
	for _, entry := range m.view.Logs {
		line := "  " + LogTimeStyle.Render(entry.Time) + " "
		if entry.Level == "warn" || entry.Level == "error" {
			line += LogLevelWarnStyle.Render(entry.Text)
		} else {
			line += LogTextStyle.Render(entry.Text)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
