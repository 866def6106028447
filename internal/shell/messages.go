package shell

import (
	"time"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/poller"
)

// SnapshotMsg carries a freshly published ViewState from the poller into
// the UI loop. Sent by the Bridge.
type SnapshotMsg struct {
	View poller.ViewState
	Time time.Time
}

// accountsMsg carries the result of an accounts fetch.
type accountsMsg struct {
	accounts []api.Account
}

// accountsErrMsg reports a failed accounts fetch. The page keeps showing
// the last good list.
type accountsErrMsg struct {
	err string
}

// uiTickMsg drives once-per-second chrome updates ("Ns ago" in the header).
type uiTickMsg time.Time
