package recorder

import (
	"github.com/sirupsen/logrus"

	"RSITracker/internal/model"
)

// BestEffort wraps a Recorder so Record never returns an error; failures go
// to the log. The tracker keeps its cadence regardless of sink health.
type BestEffort struct {
	inner Recorder
	log   logrus.FieldLogger
}

// NewBestEffort creates the never-fail wrapper.
func NewBestEffort(inner Recorder, log logrus.FieldLogger) *BestEffort {
	return &BestEffort{inner: inner, log: log}
}

func (b *BestEffort) Record(s *model.Sample) error {
	if err := b.inner.Record(s); err != nil {
		b.log.WithError(err).Error("record sample")
	}
	return nil
}

func (b *BestEffort) Close() error { return b.inner.Close() }
