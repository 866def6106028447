package api

// LogEntry is one line of the service's activity feed. Fields missing from
// the payload stay empty strings; order is whatever the server sent.
type LogEntry struct {
	Text  string `json:"text"`
	Time  string `json:"time"`
	Level string `json:"level"`
}

// Snapshot is one fetched-and-parsed metrics payload, normalized: absent
// counters are 0, absent strings are "", Logs is never nil.
type Snapshot struct {
	AccountsTotal int
	CachedLogins  int
	Requests24h   int
	ActiveTokens  int
	Requests5m    int
	UpdatedAt     string
	Logs          []LogEntry
}

// Account is one saved login as reported by the service's SSO list.
type Account struct {
	UserID   string
	Nickname string
	RealName string
	PhotoURL string
}

// metricsEnvelope matches the service's response wrapper. Only data matters;
// a missing or null data object means "everything defaults".
type metricsEnvelope struct {
	Data *metricsData `json:"data"`
}

type metricsData struct {
	AccountsTotal int        `json:"accounts_total"`
	CachedLogins  int        `json:"cached_logins"`
	Requests24h   int        `json:"requests_24h"`
	ActiveTokens  int        `json:"active_tokens"`
	Requests5m    int        `json:"requests_5m"`
	UpdatedAt     string     `json:"updated_at"`
	Logs          []LogEntry `json:"logs"`
}

type accountsEnvelope struct {
	Data []accountData `json:"data"`
}

// accountData uses the service's legacy pt_* field names.
type accountData struct {
	Nickname string `json:"pt_nickname"`
	UserID   string `json:"pt_userid"`
	RealName string `json:"pt_username"`
	PhotoURL string `json:"pt_photourl"`
}

// snapshot converts the wire form to the normalized Snapshot.
func (e metricsEnvelope) snapshot() Snapshot {
	if e.Data == nil {
		return Snapshot{Logs: []LogEntry{}}
	}

	logs := e.Data.Logs
	if logs == nil {
		logs = []LogEntry{}
	}

	return Snapshot{
		AccountsTotal: e.Data.AccountsTotal,
		CachedLogins:  e.Data.CachedLogins,
		Requests24h:   e.Data.Requests24h,
		ActiveTokens:  e.Data.ActiveTokens,
		Requests5m:    e.Data.Requests5m,
		UpdatedAt:     e.Data.UpdatedAt,
		Logs:          logs,
	}
}
