package runner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/DiegoTx1/TX-2.0/internal/collector"
	"github.com/DiegoTx1/TX-2.0/internal/config"
	"github.com/DiegoTx1/TX-2.0/internal/model"
	"github.com/DiegoTx1/TX-2.0/internal/notifier"
	"github.com/DiegoTx1/TX-2.0/internal/recorder"
	"github.com/DiegoTx1/TX-2.0/internal/store"
)

// Engine is the analysis entry point the runner drives once per cycle.
type Engine interface {
	Analyze() (*model.AnalysisResult, error)
	ResetCooldown()
}

// Runner drives the analysis cycle. Two triggers exist: the cron entry
// aligned to bar boundaries and OnBarClosed pushed by a streaming
// collaborator. Both funnel into runCycle behind a single-flight guard, so at
// most one cycle runs at a time and a second arrival is dropped.
type Runner struct {
	cfg      *config.Config
	cron     *cron.Cron
	fetcher  collector.Fetcher
	primary  *store.Store
	confirm  *store.Store // may be nil
	engine   Engine
	recorder recorder.Recorder
	notifier notifier.Notifier
	log      zerolog.Logger
	ctx      context.Context

	busy atomic.Bool

	mu            sync.Mutex
	errorCount    int
	breakerOpenAt time.Time // zero when closed
	breakerLogged bool
}

// New creates a runner; confirm may be nil when no higher timeframe is
// configured.
func New(ctx context.Context, cfg *config.Config, f collector.Fetcher, primary, confirm *store.Store,
	eng Engine, rec recorder.Recorder, n notifier.Notifier, log zerolog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		cron:     cron.New(cron.WithSeconds()),
		fetcher:  f,
		primary:  primary,
		confirm:  confirm,
		engine:   eng,
		recorder: rec,
		notifier: n,
		log:      log.With().Str("component", "runner").Logger(),
		ctx:      ctx,
	}
}

// Register adds the bar-boundary cron entry.
func (r *Runner) Register() error {
	if _, err := r.cron.AddFunc(r.cfg.Schedule.CycleCron, func() { r.trigger("cron") }); err != nil {
		return fmt.Errorf("register cycle task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Runner) Start() {
	r.cron.Start()
	r.log.Info().Str("cron", r.cfg.Schedule.CycleCron).Msg("runner started")
}

// Stop stops the cron scheduler gracefully.
func (r *Runner) Stop() {
	r.cron.Stop()
	r.log.Info().Msg("runner stopped")
}

// RunNow executes one cycle immediately (manual trigger / run-on-start).
func (r *Runner) RunNow() { r.trigger("manual") }

// OnBarClosed is the streaming-trigger entry point: a collaborator that
// learned of a closed bar calls it. Coalesces with the timer trigger through
// the same guard.
func (r *Runner) OnBarClosed() { r.trigger("stream") }

func (r *Runner) trigger(source string) {
	if !r.busy.CompareAndSwap(false, true) {
		// A cycle is already in flight; the second arrival is dropped, never
		// run concurrently.
		r.log.Debug().Str("source", source).Msg("cycle in progress, trigger dropped")
		return
	}
	defer r.busy.Store(false)
	r.runCycle(source)
}

func (r *Runner) runCycle(source string) {
	if open, remaining := r.breakerOpen(); open {
		if !r.breakerLogged {
			r.log.Error().Dur("remaining", remaining).Msg("circuit breaker open, cycles paused")
			r.markBreakerLogged()
			r.notifier.Notify(&model.AnalysisResult{
				Signal: model.SignalError,
				At:     time.Now(),
				Err:    model.ErrCircuitOpen.Error(),
			}, r.recorder.History())
		}
		return
	}

	result, err := r.collectAndAnalyze()
	if err != nil {
		count := r.recordFailure()
		r.log.Error().Err(err).Int("consecutive", count).Str("source", source).Msg("cycle failed")
		errResult := &model.AnalysisResult{
			Signal: model.SignalError,
			At:     time.Now(),
			Err:    err.Error(),
		}
		r.notifier.Notify(errResult, r.recorder.History())
		return
	}

	r.recordSuccess()
	r.recorder.Record(result)
	r.notifier.Notify(result, r.recorder.History())
}

func (r *Runner) collectAndAnalyze() (*model.AnalysisResult, error) {
	timeout := time.Duration(r.cfg.Runner.FetchTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.ctx, timeout)
	defer cancel()

	batch, err := r.fetcher.Fetch(ctx, r.cfg.Market.Symbol, r.cfg.Market.Interval, r.cfg.Market.HistoryBars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	if err := r.primary.ReplaceAll(batch); err != nil {
		return nil, fmt.Errorf("refresh primary series: %w", err)
	}

	if r.confirm != nil {
		confirmBatch, err := r.fetcher.Fetch(ctx, r.cfg.Market.Symbol, r.cfg.Market.ConfirmInterval, r.cfg.Market.HistoryBars)
		if err != nil {
			// The confirm timeframe only feeds a score bonus; its failure
			// degrades the cycle instead of failing it.
			r.log.Warn().Err(err).Msg("confirm timeframe fetch failed, continuing without it")
		} else if err := r.confirm.ReplaceAll(confirmBatch); err != nil {
			r.log.Warn().Err(err).Msg("confirm series rejected, continuing without it")
		}
	}

	return r.engine.Analyze()
}

// recordFailure bumps the consecutive-error counter and opens the breaker
// once the threshold is crossed.
func (r *Runner) recordFailure() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorCount++
	if r.errorCount >= r.cfg.Runner.MaxConsecutiveErrors && r.breakerOpenAt.IsZero() {
		r.breakerOpenAt = time.Now()
		r.breakerLogged = false
		r.log.Error().Int("errors", r.errorCount).Msg("error threshold crossed, opening circuit breaker")
	}
	return r.errorCount
}

func (r *Runner) recordSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorCount = 0
	r.breakerOpenAt = time.Time{}
}

// breakerOpen reports whether the breaker still holds. When the cooldown has
// elapsed the breaker half-opens: the next cycle runs as the probe, and the
// engine's cooldown is reset so the restart behaves like a fresh boot.
func (r *Runner) breakerOpen() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.breakerOpenAt.IsZero() {
		return false, 0
	}
	cooldown := time.Duration(r.cfg.Runner.BreakerCooldownSecs) * time.Second
	elapsed := time.Since(r.breakerOpenAt)
	if elapsed < cooldown {
		return true, cooldown - elapsed
	}
	r.breakerOpenAt = time.Time{}
	r.errorCount = 0
	r.engine.ResetCooldown()
	r.log.Info().Msg("circuit breaker half-open, probing with next cycle")
	return false, 0
}

func (r *Runner) markBreakerLogged() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breakerLogged = true
}
