package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"RSITracker/internal/calculator"
	"RSITracker/internal/collector"
	"RSITracker/internal/config"
	"RSITracker/internal/recorder"
	"RSITracker/internal/scheduler"
	"RSITracker/internal/tracker"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("RSITracker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	} else {
		log.SetLevel(lvl)
	}

	// Price sources: Binance.US first, CoinGecko as fallback.
	fetcher := collector.NewChain(log,
		collector.NewBinanceFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy),
		collector.NewCoinGeckoFetcher(cfg.Proxy),
	)
	log.WithField("sources", fetcher.Name()).Info("price sources configured")

	// Init RSI engine
	engine, err := calculator.NewRSIEngine(cfg.Tracker.Period)
	if err != nil {
		log.WithError(err).Fatal("init rsi engine")
	}

	// Init recorders: CSV always, SQLite when configured.
	var recorders []recorder.Recorder
	csvRec, err := recorder.NewCSVRecorder(cfg.Output.CSVPath)
	if err != nil {
		log.WithError(err).Warn("init csv recorder failed, continuing without it")
	} else {
		recorders = append(recorders, csvRec)
	}

	var store *recorder.SQLiteRecorder
	if cfg.Output.SQLitePath != "" {
		store, err = recorder.NewSQLiteRecorder(cfg.Output.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("init sqlite recorder failed, continuing without it")
			store = nil
		} else {
			log.WithField("path", cfg.Output.SQLitePath).Info("sqlite recorder opened")
			recorders = append(recorders, store)
			defer store.Close()
		}
	}

	if len(recorders) == 0 {
		log.Warn("no recorder available, samples will not be persisted")
		recorders = append(recorders, recorder.NewNoopRecorder())
	}

	// Sink failures are logged, never fatal to the loop.
	rec := recorder.NewBestEffort(recorder.NewMulti(recorders...), log)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := tracker.New(tracker.Config{
		Symbol:   cfg.DataSource.Symbol,
		Interval: cfg.Interval(),
		Jitter:   cfg.Jitter(),
	}, fetcher, engine, rec, log)

	// Daily summary needs the SQLite store to aggregate from.
	if store != nil {
		sched := scheduler.NewScheduler(store, log)
		if err := sched.Register(cfg.Schedule.SummaryCron); err != nil {
			log.WithError(err).Fatal("register summary task")
		}
		sched.Start()
		defer sched.Stop()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = t.Run(ctx)
	}()

	log.Info("RSITracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	<-done
	log.Info("RSITracker stopped")
}
