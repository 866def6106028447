package shell

import "strings"

// renderAbout draws the static about page.
func (m Model) renderAbout() string {
	version := m.version
	if version == "" {
		version = "dev"
	}

	lines := []string{
		"",
		"  " + TitleStyle.Render("easidesk") + StatusMutedStyle.Render("  v"+version),
		"",
		"  " + LogTextStyle.Render("A terminal dashboard for the FastLogin service."),
		"",
		"  " + CardLabelStyle.Render("Service      ") + LogTextStyle.Render(m.client.Base()),
		"  " + CardLabelStyle.Render("Interval     ") + LogTextStyle.Render(m.cfg.Interval.String()),
		"  " + CardLabelStyle.Render("Timeout      ") + LogTextStyle.Render(m.cfg.Timeout.String()),
		"",
		"  " + StatusMutedStyle.Render("Config: easidesk init · Stub service: easidesk serve"),
	}
	return strings.Join(lines, "\n")
}
