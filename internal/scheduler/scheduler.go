// Package scheduler runs cron-driven maintenance tasks alongside the
// tracker, currently a daily summary of recorded samples.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"RSITracker/internal/recorder"
)

// StatsSource provides aggregates over recorded samples.
type StatsSource interface {
	StatsSince(cutoff time.Time) (*recorder.Stats, error)
}

// Scheduler manages the cron tasks.
type Scheduler struct {
	cron  *cron.Cron
	stats StatsSource
	log   logrus.FieldLogger

	now func() time.Time
}

// NewScheduler creates a Scheduler over the given stats source.
func NewScheduler(stats StatsSource, log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		stats: stats,
		log:   log,
		now:   time.Now,
	}
}

// Register adds the daily summary task under the given cron expression.
func (s *Scheduler) Register(summaryCron string) error {
	if _, err := s.cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) summaryTask() {
	cutoff := s.now().Add(-24 * time.Hour)
	st, err := s.stats.StatsSince(cutoff)
	if err != nil {
		s.log.WithError(err).Error("daily summary")
		return
	}
	if st.Samples == 0 {
		s.log.Info("daily summary: no samples recorded")
		return
	}
	s.log.WithFields(logrus.Fields{
		"samples":   st.Samples,
		"min_price": st.MinPrice,
		"max_price": st.MaxPrice,
		"last_rsi":  st.LastRSI,
	}).Info("daily summary")
}
