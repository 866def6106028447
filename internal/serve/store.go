package serve

import (
	"sync"
	"time"

	"github.com/easilogin/easidesk/internal/api"
)

// minuteBuckets is a day of per-minute request counters.
const minuteBuckets = 1440

// maxLogs caps the in-memory activity feed; /metrics only ever serves the
// last logTail entries.
const (
	maxLogs = 200
	logTail = 20
)

// Store holds the stub service's in-memory state: request counters in
// per-minute ring buckets, the activity feed, and a seeded account set.
type Store struct {
	now func() time.Time

	mu         sync.Mutex
	buckets    [minuteBuckets]int
	lastMinute int64
	logs       []api.LogEntry
	accounts   []api.Account
	cached     int
	tokens     int
}

// NewStore creates a store with the given seed accounts. A nil clock uses
// time.Now.
func NewStore(accounts []api.Account, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		now:        now,
		lastMinute: -1,
		accounts:   accounts,
	}
	s.AddLog("INFO", "service started")
	return s
}

// Record counts one request into the current minute's bucket, clearing any
// buckets skipped since the last request so stale minutes don't leak into
// the 24h window.
func (s *Store) Record() {
	s.mu.Lock()
	defer s.mu.Unlock()

	minute := s.now().Unix() / 60
	idx := minute % minuteBuckets

	if s.lastMinute < 0 {
		s.lastMinute = minute
	}
	if minute != s.lastMinute {
		if minute-s.lastMinute >= minuteBuckets {
			s.buckets = [minuteBuckets]int{}
		} else {
			for m := s.lastMinute + 1; m <= minute; m++ {
				s.buckets[m%minuteBuckets] = 0
			}
		}
		s.lastMinute = minute
	}
	s.buckets[idx]++
}

// AddLog appends an activity entry stamped with the current time.
func (s *Store) AddLog(level, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, api.LogEntry{
		Text:  text,
		Time:  s.now().Format("15:04:05"),
		Level: level,
	})
	if len(s.logs) > maxLogs {
		s.logs = s.logs[len(s.logs)-maxLogs:]
	}
}

// RecordLogin simulates a successful cached login for the named account.
// Returns false if the account is unknown.
func (s *Store) RecordLogin(userID string) bool {
	s.mu.Lock()
	found := false
	for _, a := range s.accounts {
		if a.UserID == userID {
			found = true
			break
		}
	}
	if found {
		s.cached++
		s.tokens++
	}
	s.mu.Unlock()

	if found {
		s.AddLog("INFO", "login "+userID)
	}
	return found
}

// Accounts returns the seeded account set.
func (s *Store) Accounts() []api.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// MetricsCounters is the point-in-time state served by /metrics.
type MetricsCounters struct {
	AccountsTotal int
	CachedLogins  int
	ActiveTokens  int
	Requests24h   int
	Requests5m    int
	UpdatedAt     string
	Logs          []api.LogEntry
}

// Metrics computes the current counters. Requests24h sums the full ring;
// Requests5m sums the five most recent minutes, exactly like the real
// service.
func (s *Store) Metrics() MetricsCounters {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.now().Unix() / 60 % minuteBuckets

	total := 0
	for _, n := range s.buckets {
		total += n
	}
	recent := 0
	for i := int64(0); i < 5; i++ {
		recent += s.buckets[(idx-i+minuteBuckets)%minuteBuckets]
	}

	tail := s.logs
	if len(tail) > logTail {
		tail = tail[len(tail)-logTail:]
	}
	logs := make([]api.LogEntry, len(tail))
	copy(logs, tail)

	return MetricsCounters{
		AccountsTotal: len(s.accounts),
		CachedLogins:  s.cached,
		ActiveTokens:  s.tokens,
		Requests24h:   total,
		Requests5m:    recent,
		UpdatedAt:     s.now().Format("15:04:05"),
		Logs:          logs,
	}
}

// SeedAccounts is the default demo account set for the stub.
func SeedAccounts() []api.Account {
	return []api.Account{
		{UserID: "teacher01", Nickname: "Ms. Chen", RealName: "Chen Wei"},
		{UserID: "teacher02", Nickname: "Mr. Liu", RealName: "Liu Yang"},
		{UserID: "admin", Nickname: "Admin", RealName: "Administrator"},
	}
}
