package calculator

import (
	"errors"
	"math"
)

// DefaultPeriod is the standard RSI smoothing window.
const DefaultPeriod = 14

// RSIEngine maintains a bounded price history and computes the Relative
// Strength Index over it. The history retains at most 2*period prices,
// oldest-first, so the trailing averaging window always has a full set of
// deltas to draw from once warmed up.
//
// Not safe for concurrent use; the tracker owns a single instance.
type RSIEngine struct {
	period int
	prices []float64
}

// NewRSIEngine creates an engine with the given period (typically 14).
func NewRSIEngine(period int) (*RSIEngine, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	return &RSIEngine{
		period: period,
		prices: make([]float64, 0, 2*period),
	}, nil
}

// Period returns the configured smoothing window length.
func (e *RSIEngine) Period() int { return e.period }

// HistoryLen returns the number of retained prices.
func (e *RSIEngine) HistoryLen() int { return len(e.prices) }

// Observe appends a price to the history, dropping the oldest entries once
// the history exceeds 2*period.
func (e *RSIEngine) Observe(price float64) {
	e.prices = append(e.prices, price)
	if limit := 2 * e.period; len(e.prices) > limit {
		e.prices = append(e.prices[:0], e.prices[len(e.prices)-limit:]...)
	}
}

// Value computes the RSI from the retained history, rounded to two decimal
// places. The second return is false until period+1 prices have been
// observed.
//
// Deltas are taken over the entire retained history, but gains and losses
// are averaged over the last `period` deltas only.
func (e *RSIEngine) Value() (float64, bool) {
	if len(e.prices) < e.period+1 {
		return 0, false
	}

	gains := make([]float64, len(e.prices)-1)
	losses := make([]float64, len(e.prices)-1)
	for i := 1; i < len(e.prices); i++ {
		delta := e.prices[i] - e.prices[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	var avgGain, avgLoss float64
	for _, g := range gains[len(gains)-e.period:] {
		avgGain += g
	}
	for _, l := range losses[len(losses)-e.period:] {
		avgLoss += l
	}
	avgGain /= float64(e.period)
	avgLoss /= float64(e.period)

	if avgLoss == 0 {
		return 100.0, true
	}
	rs := avgGain / avgLoss
	rsi := 100.0 - 100.0/(1.0+rs)
	return round2(rsi), true
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
