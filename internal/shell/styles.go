package shell

import "github.com/charmbracelet/lipgloss"

// Shell color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A")

	ColorHealthy = lipgloss.Color("#39FF14")
	ColorWarning = lipgloss.Color("#FFAA00")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")
)

// Base styles for the shell
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Metric cards on the dashboard
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	CardLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	CardValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	// Page tabs in the header
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim).
				Bold(true)

	// Activity log lines
	LogTimeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	LogLevelWarnStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	LogTextStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	StatusMutedStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
