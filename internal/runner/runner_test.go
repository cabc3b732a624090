package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DiegoTx1/TX-2.0/internal/collector"
	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
	"github.com/DiegoTx1/TX-2.0/internal/recorder"
	"github.com/DiegoTx1/TX-2.0/internal/store"
)

type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	fail    bool
	blockCh chan struct{} // when set, Fetch blocks until closed
	started chan struct{} // signaled once Fetch is entered
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) Fetch(_ context.Context, _, _ string, limit int) ([]model.Candle, error) {
	f.mu.Lock()
	f.calls++
	block := f.blockCh
	started := f.started
	fail := f.fail
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if fail {
		return nil, errors.New("upstream unavailable")
	}
	fetcher := collector.NewSyntheticFetcher(collector.ShapeUptrend, 1)
	return fetcher.Fetch(context.Background(), "BTC/USD", "1m", limit)
}

func (f *stubFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type stubEngine struct {
	mu     sync.Mutex
	calls  int
	resets int
}

func (e *stubEngine) Analyze() (*model.AnalysisResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return &model.AnalysisResult{Signal: model.SignalWait, Score: 60, At: time.Now()}, nil
}

func (e *stubEngine) ResetCooldown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resets++
}

type stubNotifier struct {
	mu      sync.Mutex
	results []*model.AnalysisResult
}

func (n *stubNotifier) Notify(result *model.AnalysisResult, _ []recorder.Entry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results = append(n.results, result)
}

func (n *stubNotifier) last() *model.AnalysisResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.results) == 0 {
		return nil
	}
	return n.results[len(n.results)-1]
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	cfg.Runner.MaxConsecutiveErrors = 2
	cfg.Runner.BreakerCooldownSecs = 60
	return cfg
}

func newTestRunner(t *testing.T, f *stubFetcher) (*Runner, *stubEngine, *stubNotifier) {
	t.Helper()
	cfg := testConfig(t)
	eng := &stubEngine{}
	not := &stubNotifier{}
	primary := store.New(cfg.Market.Interval, cfg.Market.HistoryBars)
	r := New(context.Background(), cfg, f, primary, nil, eng, recorder.NewNoopRecorder(), not, zerolog.Nop())
	return r, eng, not
}

func TestRunner_SuccessfulCycle(t *testing.T) {
	f := &stubFetcher{}
	r, eng, not := newTestRunner(t, f)

	r.RunNow()

	if f.count() != 1 {
		t.Fatalf("expected one fetch, got %d", f.count())
	}
	if eng.calls != 1 {
		t.Fatalf("expected one analysis, got %d", eng.calls)
	}
	if r.primary.Len() == 0 {
		t.Error("expected the primary store to be filled")
	}
	if got := not.last(); got == nil || got.Signal != model.SignalWait {
		t.Errorf("expected the result delivered to the notifier, got %+v", got)
	}
}

func TestRunner_SingleFlight(t *testing.T) {
	f := &stubFetcher{
		blockCh: make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	r, _, _ := newTestRunner(t, f)

	done := make(chan struct{})
	go func() {
		r.RunNow()
		close(done)
	}()
	<-f.started // first cycle is inside Fetch now

	// Both trigger paths must be dropped while the first cycle runs.
	r.RunNow()
	r.OnBarClosed()
	if got := f.count(); got != 1 {
		t.Errorf("expected concurrent triggers dropped, fetch count %d", got)
	}

	close(f.blockCh)
	<-done

	f.mu.Lock()
	f.blockCh, f.started = nil, nil
	f.mu.Unlock()
	r.RunNow()
	if got := f.count(); got != 2 {
		t.Errorf("expected the guard released after the cycle, fetch count %d", got)
	}
}

func TestRunner_ErrorResultOnFetchFailure(t *testing.T) {
	f := &stubFetcher{fail: true}
	r, eng, not := newTestRunner(t, f)

	r.RunNow()

	if eng.calls != 0 {
		t.Errorf("analysis must not run on a failed fetch, got %d calls", eng.calls)
	}
	got := not.last()
	if got == nil || got.Signal != model.SignalError {
		t.Fatalf("expected an ERROR result, got %+v", got)
	}
	if got.Err == "" {
		t.Error("ERROR result must carry the cause")
	}
}

func TestRunner_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	f := &stubFetcher{fail: true}
	r, _, _ := newTestRunner(t, f)

	r.RunNow() // failure 1
	r.RunNow() // failure 2, threshold reached
	if f.count() != 2 {
		t.Fatalf("expected two fetch attempts, got %d", f.count())
	}

	r.RunNow() // breaker open, no fetch
	if f.count() != 2 {
		t.Errorf("expected the breaker to block the third cycle, fetch count %d", f.count())
	}
}

func TestRunner_BreakerHalfOpensAfterCooldown(t *testing.T) {
	f := &stubFetcher{fail: true}
	r, eng, _ := newTestRunner(t, f)

	r.RunNow()
	r.RunNow()

	// Rewind the opening time past the cooldown.
	r.mu.Lock()
	r.breakerOpenAt = time.Now().Add(-time.Duration(r.cfg.Runner.BreakerCooldownSecs+1) * time.Second)
	r.mu.Unlock()

	f.mu.Lock()
	f.fail = false
	f.mu.Unlock()

	r.RunNow() // probe cycle
	if f.count() != 3 {
		t.Fatalf("expected the half-open probe to fetch, count %d", f.count())
	}
	if eng.resets != 1 {
		t.Errorf("expected the engine cooldown reset on half-open, got %d resets", eng.resets)
	}

	r.RunNow()
	if f.count() != 4 {
		t.Errorf("expected normal operation after a successful probe, count %d", f.count())
	}
}

func TestRunner_SuccessResetsErrorCount(t *testing.T) {
	f := &stubFetcher{fail: true}
	r, _, _ := newTestRunner(t, f)

	r.RunNow() // failure 1

	f.mu.Lock()
	f.fail = false
	f.mu.Unlock()
	r.RunNow() // success clears the streak

	f.mu.Lock()
	f.fail = true
	f.mu.Unlock()
	r.RunNow() // failure 1 again, below the threshold

	r.mu.Lock()
	open := !r.breakerOpenAt.IsZero()
	r.mu.Unlock()
	if open {
		t.Error("a single failure after a success must not open the breaker")
	}
}

func TestRunner_RegisterAcceptsBarAlignedCron(t *testing.T) {
	f := &stubFetcher{}
	r, _, _ := newTestRunner(t, f)
	if err := r.Register(); err != nil {
		t.Fatalf("register: %v", err)
	}
	r.Start()
	r.Stop()
}
