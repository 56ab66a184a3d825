package recorder

import (
	"errors"

	"RSITracker/internal/model"
)

// Multi fans each sample out to several recorders.
type Multi struct {
	recorders []Recorder
}

// NewMulti creates a fan-out recorder. A single recorder is returned as-is.
func NewMulti(recorders ...Recorder) Recorder {
	if len(recorders) == 1 {
		return recorders[0]
	}
	return &Multi{recorders: recorders}
}

// Record writes the sample to every recorder; failures are joined so one
// broken store does not hide writes to the others.
func (m *Multi) Record(s *model.Sample) error {
	var errs []error
	for _, r := range m.recorders {
		if err := r.Record(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for _, r := range m.recorders {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
