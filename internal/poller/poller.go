// Package poller implements the dashboard's metrics poller: on a fixed
// cadence it fetches a snapshot from the FastLogin service and publishes it
// wholesale to a consumer callback.
//
// Failures are silent by design. Metrics are soft state, so a failed cycle
// keeps the last good view rather than surfacing an error; the next tick
// gets a fresh chance. Discards are still counted (see Stats) and logged at
// debug level.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/easilogin/easidesk/internal/api"
	"github.com/easilogin/easidesk/internal/logger"
)

// DefaultInterval is the fixed fetch cadence.
const DefaultInterval = 5 * time.Second

// Fetcher retrieves one metrics snapshot. *api.Client satisfies this.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (api.Snapshot, error)
}

// ViewState is the authoritative display state derived from the latest
// successful snapshot. It is only ever replaced wholesale; a failed cycle
// leaves the previous value untouched.
type ViewState struct {
	AccountsTotal int
	CachedLogins  int
	Requests24h   int
	ActiveTokens  int
	Requests5m    int
	UpdatedAt     string
	Logs          []api.LogEntry
}

// Stats counts poll cycles for observability. Purely diagnostic; failures
// never change externally visible behavior.
type Stats struct {
	Cycles    uint64 // completed fetches, success or not
	Applied   uint64 // snapshots published to the consumer
	Discarded uint64 // cycles dropped due to fetch/parse failure
	Stale     uint64 // successful cycles dropped for arriving out of order
}

// result carries one completed fetch back to the run loop.
type result struct {
	seq   uint64
	state ViewState
	err   error
}

// Poller owns the timer and fetch lifecycle. Start and Stop are idempotent
// and the poller can be restarted; state survives across restarts so a
// remounted dashboard keeps showing last-known-good data.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	log      logger.Logger

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	onUpdate func(ViewState)
	state    ViewState

	// seq tags each fetch at issue time. Two fetches can be in flight at
	// once when the service is slow; lastApplied ensures a late response
	// never overwrites a newer one.
	seq         atomic.Uint64
	lastApplied uint64

	cycles    atomic.Uint64
	applied   atomic.Uint64
	discarded atomic.Uint64
	stale     atomic.Uint64
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(p *Poller) { p.log = l }
}

// New creates a poller for the given fetcher. A non-positive interval uses
// DefaultInterval.
func New(fetcher Fetcher, interval time.Duration, opts ...Option) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Poller{
		fetcher:  fetcher,
		interval: interval,
		log:      logger.Noop(),
		state:    ViewState{Logs: []api.LogEntry{}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnUpdate registers the consumer callback, invoked exactly once per
// successful cycle with the new ViewState. The callback runs on the
// poller's own goroutine; consumers with their own event loop must marshal
// the value over (see shell.Bridge).
func (p *Poller) OnUpdate(fn func(ViewState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = fn
}

// State returns the current ViewState.
func (p *Poller) State() ViewState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Stats returns cycle counters.
func (p *Poller) Stats() Stats {
	return Stats{
		Cycles:    p.cycles.Load(),
		Applied:   p.applied.Load(),
		Discarded: p.discarded.Load(),
		Stale:     p.stale.Load(),
	}
}

// Running reports whether the poller is started.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Start begins an immediate fetch, then fetches every interval. Ticks are
// wall-clock periodic and do not wait for the previous fetch to finish.
// Calling Start while running has no additional effect.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	results := make(chan result, 4)
	p.wg.Add(1)
	go p.run(ctx, results)
}

// Stop halts the timer and cancels any in-flight fetch. It blocks until the
// run loop has exited, so no callback fires and no state mutates after Stop
// returns. Calling Stop when not running has no effect.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	p.mu.Unlock()

	cancel()
	p.wg.Wait()
}

// Reconfigure swaps the fetcher and interval, restarting the poller if it
// was running. The last-known-good state and registered callback survive; a
// non-positive interval keeps the current one.
func (p *Poller) Reconfigure(fetcher Fetcher, interval time.Duration) {
	wasRunning := p.Running()
	if wasRunning {
		p.Stop()
	}

	p.mu.Lock()
	if fetcher != nil {
		p.fetcher = fetcher
	}
	if interval > 0 {
		p.interval = interval
	}
	p.mu.Unlock()

	if wasRunning {
		p.Start()
	}
}

// run is the poller's single event loop: it owns lastApplied and is the only
// goroutine that publishes state.
func (p *Poller) run(ctx context.Context, results chan result) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.dispatch(ctx, results)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.dispatch(ctx, results)
		case res := <-results:
			p.apply(res)
		}
	}
}

// dispatch issues one fetch without blocking the loop.
func (p *Poller) dispatch(ctx context.Context, results chan result) {
	seq := p.seq.Add(1)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		snap, err := p.fetcher.FetchSnapshot(ctx)
		res := result{seq: seq, err: err}
		if err == nil {
			res.state = fromSnapshot(snap)
		}
		select {
		case results <- res:
		case <-ctx.Done():
		}
	}()
}

// apply processes one completed fetch on the run loop.
func (p *Poller) apply(res result) {
	p.cycles.Add(1)

	if res.err != nil {
		p.discarded.Add(1)
		p.log.Debug("cycle %d discarded: %v", res.seq, res.err)
		return
	}

	if res.seq <= p.lastApplied {
		p.stale.Add(1)
		p.log.Debug("cycle %d stale (newest applied: %d)", res.seq, p.lastApplied)
		return
	}
	p.lastApplied = res.seq

	p.mu.Lock()
	p.state = res.state
	fn := p.onUpdate
	p.mu.Unlock()

	p.applied.Add(1)
	if fn != nil {
		fn(res.state)
	}
}

// fromSnapshot copies a snapshot into a ViewState. The logs slice is copied
// so the published value stays immutable even if the snapshot is reused.
func fromSnapshot(s api.Snapshot) ViewState {
	logs := make([]api.LogEntry, len(s.Logs))
	copy(logs, s.Logs)
	return ViewState{
		AccountsTotal: s.AccountsTotal,
		CachedLogins:  s.CachedLogins,
		Requests24h:   s.Requests24h,
		ActiveTokens:  s.ActiveTokens,
		Requests5m:    s.Requests5m,
		UpdatedAt:     s.UpdatedAt,
		Logs:          logs,
	}
}
