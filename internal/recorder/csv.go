package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"RSITracker/internal/model"
)

// csvHeader is the persisted schema; column order is part of the contract.
var csvHeader = []string{"timestamp", "price", "rsi"}

// CSVRecorder appends samples to a CSV file, one headerless row per sample.
type CSVRecorder struct {
	path string
	mu   sync.Mutex
}

// NewCSVRecorder creates the target file with the header row if it does not
// exist yet. Existing files are appended to as-is.
func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create csv dir: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeCSVHeader(path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat csv: %w", err)
	}
	return &CSVRecorder{path: path}, nil
}

func writeCSVHeader(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}

// Record appends one row in timestamp,price,rsi order.
func (r *CSVRecorder) Record(s *model.Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		s.Timestamp(),
		strconv.FormatFloat(s.Price, 'f', -1, 64),
		strconv.FormatFloat(s.RSI, 'f', 2, 64),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv row: %w", err)
	}
	return nil
}

func (r *CSVRecorder) Close() error { return nil }
