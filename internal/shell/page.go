package shell

// Page identifies one of the shell's navigation pages.
type Page int

const (
	PageDashboard Page = iota
	PageAccounts
	PageSettings
	PageAbout
)

// pageCount is the number of navigable pages.
const pageCount = 4

// String returns the page's display title.
func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageAccounts:
		return "Accounts"
	case PageSettings:
		return "Settings"
	case PageAbout:
		return "About"
	default:
		return "Unknown"
	}
}

// Next cycles forward through the pages.
func (p Page) Next() Page {
	return Page((int(p) + 1) % pageCount)
}

// Prev cycles backward through the pages.
func (p Page) Prev() Page {
	return Page((int(p) + pageCount - 1) % pageCount)
}
