package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easilogin/easidesk/internal/poller"
)

// Bridge forwards poller updates to the Bubble Tea program via
// program.Send(). The poller invokes its callback on its own goroutine;
// Send is the goroutine-safe way onto the UI loop.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a bridge that forwards updates to the given program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// SnapshotUpdated implements the poller's OnUpdate callback.
func (b *Bridge) SnapshotUpdated(vs poller.ViewState) {
	b.program.Send(SnapshotMsg{View: vs, Time: time.Now()})
}
