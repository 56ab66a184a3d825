package recorder

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RSITracker/internal/model"
)

type failingRecorder struct {
	err   error
	calls int
}

func (f *failingRecorder) Record(_ *model.Sample) error {
	f.calls++
	return f.err
}
func (f *failingRecorder) Close() error { return nil }

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestBestEffort_SwallowsErrors(t *testing.T) {
	inner := &failingRecorder{err: errors.New("disk full")}
	b := NewBestEffort(inner, discardLogger())

	err := b.Record(sampleAt(time.Now(), 100, 50))
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestMulti_AllRecordersWritten(t *testing.T) {
	a := &failingRecorder{}
	b := &failingRecorder{err: errors.New("broken")}
	c := &failingRecorder{}
	m := NewMulti(a, b, c)

	err := m.Record(sampleAt(time.Now(), 100, 50))
	require.Error(t, err)
	// The broken middle recorder must not stop the others.
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, c.calls)
}

func TestMulti_SingleUnwrapped(t *testing.T) {
	a := &failingRecorder{}
	assert.Equal(t, Recorder(a), NewMulti(a))
}
