// Package tracker implements the sampling loop: fetch a price, update the
// RSI engine, record the sample, sleep with jitter, repeat. No failure stops
// the loop; failures are logged and answered with a fixed capped backoff,
// and only context cancellation ends it.
package tracker

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"RSITracker/internal/calculator"
	"RSITracker/internal/collector"
	"RSITracker/internal/model"
	"RSITracker/internal/recorder"
)

const (
	// DefaultInterval is the steady-state pause between polls.
	DefaultInterval = 60 * time.Second
	// DefaultJitter bounds the random perturbation added to the interval so
	// instances do not poll the provider in lockstep.
	DefaultJitter = 2 * time.Second
	// maxBackoffCap bounds worst-case recovery latency after a failure.
	maxBackoffCap = 300 * time.Second
)

// Config holds the tracker pacing parameters. Immutable once the tracker is
// built.
type Config struct {
	Symbol   string
	Interval time.Duration
	Jitter   time.Duration
}

// Backoff returns the post-failure wait: twice the interval, capped at five
// minutes.
func (c Config) Backoff() time.Duration {
	b := 2 * c.Interval
	if b > maxBackoffCap {
		b = maxBackoffCap
	}
	return b
}

// Tracker drives the sampling loop for a single symbol. It owns the RSI
// engine's history; nothing else mutates it.
type Tracker struct {
	cfg      Config
	fetcher  collector.Fetcher
	engine   *calculator.RSIEngine
	recorder recorder.Recorder
	log      logrus.FieldLogger

	// Injectable for tests.
	now   func() time.Time
	rand  *rand.Rand
	sleep func(ctx context.Context, d time.Duration) bool
}

// New creates a Tracker. Zero pacing values fall back to the defaults.
func New(cfg Config, fetcher collector.Fetcher, engine *calculator.RSIEngine, rec recorder.Recorder, log logrus.FieldLogger) *Tracker {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	t := &Tracker{
		cfg:      cfg,
		fetcher:  fetcher,
		engine:   engine,
		recorder: rec,
		log:      log,
		now:      time.Now,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	t.sleep = sleepCtx
	return t
}

// Run executes the loop until ctx is cancelled and returns ctx.Err(). Sleeps
// are interruptible, so cancellation takes effect without waiting out the
// current pause.
func (t *Tracker) Run(ctx context.Context) error {
	t.log.WithField("symbol", t.cfg.Symbol).Info("starting RSI tracking")
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait := t.pollOnce()
		if !t.sleep(ctx, wait) {
			return ctx.Err()
		}
	}
}

// pollOnce performs one iteration and returns how long to wait before the
// next one.
func (t *Tracker) pollOnce() time.Duration {
	price, err := t.fetcher.FetchCurrentPrice(t.cfg.Symbol)
	if err != nil {
		t.log.WithError(err).
			WithField("kind", collector.Classify(err).String()).
			Error("fetch price")
		return t.cfg.Backoff()
	}

	t.engine.Observe(price)

	rsi, ok := t.engine.Value()
	if !ok {
		// Normal warm-up state, not an error; no partial row is written.
		t.log.WithFields(logrus.Fields{
			"price": price,
			"have":  t.engine.HistoryLen(),
			"need":  t.engine.Period() + 1,
		}).Debug("insufficient history, skipping record")
		return t.jittered()
	}

	sample := &model.Sample{Time: t.now(), Price: price, RSI: rsi}
	if err := t.recorder.Record(sample); err != nil {
		t.log.WithError(err).
			WithField("kind", collector.KindUnexpected.String()).
			Error("record sample")
		return t.cfg.Backoff()
	}

	t.log.WithFields(logrus.Fields{
		"time":  sample.Timestamp(),
		"price": price,
		"rsi":   rsi,
	}).Info("logged data")
	return t.jittered()
}

// jittered returns interval + uniform(-jitter, +jitter).
func (t *Tracker) jittered() time.Duration {
	if t.cfg.Jitter == 0 {
		return t.cfg.Interval
	}
	offset := time.Duration((t.rand.Float64()*2 - 1) * float64(t.cfg.Jitter))
	return t.cfg.Interval + offset
}

// sleepCtx waits for d or until ctx is cancelled; false means cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
