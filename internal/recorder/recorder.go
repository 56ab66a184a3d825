package recorder

import "RSITracker/internal/model"

// Recorder persists samples for later analysis.
type Recorder interface {
	Record(s *model.Sample) error
	Close() error
}
