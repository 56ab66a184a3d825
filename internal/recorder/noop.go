package recorder

import "RSITracker/internal/model"

// NoopRecorder discards samples; used when no store is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *model.Sample) error { return nil }
func (n *NoopRecorder) Close() error                 { return nil }
