package model

import "time"

// TimestampLayout is the civil date-time format used in persisted records.
const TimestampLayout = "2006-01-02 15:04:05"

// Sample is one recorded observation: a fetched price and the RSI computed
// from the rolling history at that moment.
type Sample struct {
	Time  time.Time
	Price float64
	RSI   float64
}

// Timestamp formats the sample time for persistence.
func (s *Sample) Timestamp() string {
	return s.Time.Format(TimestampLayout)
}
