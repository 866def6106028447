package serve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/logger"
)

// fakeClock is an adjustable clock for bucket tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestServer(t *testing.T, clock *fakeClock) (*Server, *httptest.Server) {
	t.Helper()
	var now func() time.Time
	if clock != nil {
		now = clock.Now
	}
	store := NewStore(SeedAccounts(), now)
	srv := NewServer(store, config.ServeConfig{Addr: "127.0.0.1", Port: 24300}, logger.Noop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestMetrics_RoundTripsThroughClient(t *testing.T) {
	// The stub must produce payloads the real dashboard client accepts.
	_, ts := newTestServer(t, nil)
	client := api.NewClient(ts.URL, time.Second)

	snap, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snap.AccountsTotal)
	assert.NotEmpty(t, snap.UpdatedAt)
	// "service started" entry from store creation
	require.NotEmpty(t, snap.Logs)
	assert.Equal(t, "service started", snap.Logs[0].Text)
	assert.Equal(t, "INFO", snap.Logs[0].Level)
	// The /metrics request itself was counted.
	assert.GreaterOrEqual(t, snap.Requests5m, 1)
	assert.GreaterOrEqual(t, snap.Requests24h, snap.Requests5m)
}

func TestAccountList_RoundTripsThroughClient(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := api.NewClient(ts.URL, time.Second)

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "teacher01", accounts[0].UserID)
	assert.Equal(t, "Ms. Chen", accounts[0].Nickname)
	assert.Equal(t, "Chen Wei", accounts[0].RealName)
}

func TestLogin_KnownAndUnknown(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/getData/SSOLOGIN/teacher01")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/getData/SSOLOGIN/nobody")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The login moved the counters and the activity feed.
	client := api.NewClient(ts.URL, time.Second)
	snap, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CachedLogins)
	assert.Equal(t, 1, snap.ActiveTokens)
	assert.Equal(t, "login teacher01", snap.Logs[len(snap.Logs)-1].Text)
}

func TestSaveData(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/savedata")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStore_BucketWindows(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(nil, clock.Now)

	// 3 requests this minute
	store.Record()
	store.Record()
	store.Record()

	// 2 requests ten minutes later
	clock.Advance(10 * time.Minute)
	store.Record()
	store.Record()

	m := store.Metrics()
	assert.Equal(t, 5, m.Requests24h)
	// Only the recent 2 fall inside the 5 minute window.
	assert.Equal(t, 2, m.Requests5m)
}

func TestStore_BucketsExpireAfterADay(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(nil, clock.Now)

	store.Record()
	store.Record()

	// A full day later the old bucket must have been cleared.
	clock.Advance(25 * time.Hour)
	store.Record()

	m := store.Metrics()
	assert.Equal(t, 1, m.Requests24h)
	assert.Equal(t, 1, m.Requests5m)
}

func TestStore_StaleMinutesCleared(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(nil, clock.Now)

	store.Record()

	// Jump forward by less than a day; the skipped minutes are zeroed but
	// the original bucket stays (it is still within the 24h window).
	clock.Advance(30 * time.Minute)
	store.Record()

	m := store.Metrics()
	assert.Equal(t, 2, m.Requests24h)
	assert.Equal(t, 1, m.Requests5m)
}

func TestStore_LogTail(t *testing.T) {
	store := NewStore(nil, nil)

	for i := 0; i < 50; i++ {
		store.AddLog("INFO", "entry")
	}

	m := store.Metrics()
	// /metrics serves only the newest 20 entries.
	assert.Len(t, m.Logs, logTail)
}

func TestShutdown_BeforeListen(t *testing.T) {
	srv := NewServer(NewStore(nil, nil), config.ServeConfig{Addr: "127.0.0.1", Port: 0}, logger.Noop())
	assert.NoError(t, srv.Shutdown(context.Background()))
}
