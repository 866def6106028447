package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed chrome heights used for layout math.
const (
	headerHeight    = 3
	footerHeight    = 2
	cardBlockHeight = 3
)

// View renders the shell: header with page tabs, the active page body, and
// a footer hint line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		switch m.page {
		case PageDashboard:
			b.WriteString(m.renderDashboard())
		case PageAccounts:
			b.WriteString(m.renderAccounts())
		case PageSettings:
			b.WriteString(m.renderSettings())
		case PageAbout:
			b.WriteString(m.renderAbout())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the title line and the page tab bar.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("easidesk")
	status := m.renderStatus()

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	titleLine := HeaderStyle.Render(title + strings.Repeat(" ", gap) + status)

	tabs := make([]string, 0, pageCount)
	for p := PageDashboard; p < Page(pageCount); p++ {
		label := fmt.Sprintf("%d %s", int(p)+1, p.String())
		if p == m.page {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	tabLine := " " + strings.Join(tabs, TabInactiveStyle.Render("  |  "))

	return titleLine + "\n" + tabLine + "\n"
}

// renderStatus reports snapshot freshness in the header's right corner.
func (m Model) renderStatus() string {
	if !m.haveSnapshot {
		return StatusMutedStyle.Render("waiting for data")
	}

	secs := m.SecondsSinceUpdate()
	label := fmt.Sprintf("updated %ds ago", secs)
	if secs <= int(m.cfg.Interval.Seconds())+1 {
		return StatusOKStyle.Render("● ") + StatusMutedStyle.Render(label)
	}
	return LogLevelWarnStyle.Render("● ") + StatusMutedStyle.Render(label)
}

// renderFooter draws the key hint line for the active page.
func (m Model) renderFooter() string {
	var hints string
	switch m.page {
	case PageAccounts:
		hints = "1-4/tab pages · ↑/↓ select · r refresh · ? help · q quit"
	case PageSettings:
		hints = "enter next field · esc back · ctrl+c quit"
	default:
		hints = "1-4/tab pages · ? help · q quit"
	}
	return FooterStyle.Render(hints)
}

// renderHelp draws the help overlay.
func (m Model) renderHelp() string {
	lines := []string{
		SectionTitleStyle.Render("Keyboard"),
		"",
		"  1-4          jump to page",
		"  tab / shift+tab   next / previous page",
		"  r            refresh accounts (accounts page)",
		"  ↑/↓          scroll logs, select account",
		"  ?            toggle this help",
		"  esc          close help / leave settings",
		"  q, ctrl+c    quit",
		"",
		StatusMutedStyle.Render("The dashboard refreshes itself every " + m.cfg.Interval.String() + "."),
	}
	return HelpStyle.Render(strings.Join(lines, "\n"))
}
