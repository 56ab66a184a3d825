package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
data_source:
  symbol: ETH/USDT
  api_key: test-key
tracker:
  period: 21
  interval_seconds: 30
  jitter_seconds: 1
output:
  sqlite_path: data/tracker.db
`
	cfg, err := Load(writeTempFile(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "ETH/USDT", cfg.DataSource.Symbol)
	assert.Equal(t, "test-key", cfg.DataSource.APIKey)
	assert.Equal(t, 21, cfg.Tracker.Period)
	assert.Equal(t, 30*time.Second, cfg.Interval())
	assert.Equal(t, time.Second, cfg.Jitter())
	assert.Equal(t, "data/tracker.db", cfg.Output.SQLitePath)
	// Derived from the symbol when not set explicitly.
	assert.Equal(t, "ETH_USDT_rsi_log.csv", cfg.Output.CSVPath)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "BTC/USDT", cfg.DataSource.Symbol)
	assert.Equal(t, 14, cfg.Tracker.Period)
	assert.Equal(t, 60*time.Second, cfg.Interval())
	assert.Equal(t, 2*time.Second, cfg.Jitter())
	assert.Equal(t, "BTC_USDT_rsi_log.csv", cfg.Output.CSVPath)
	assert.Equal(t, "0 0 0 * * *", cfg.Schedule.SummaryCron)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKER_SYMBOL", "SOL/USDT")
	t.Setenv("RSI_PERIOD", "7")
	t.Setenv("POLL_INTERVAL_SECONDS", "120")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(writeTempFile(t, "data_source:\n  symbol: BTC/USDT\n"))
	require.NoError(t, err)

	assert.Equal(t, "SOL/USDT", cfg.DataSource.Symbol)
	assert.Equal(t, 7, cfg.Tracker.Period)
	assert.Equal(t, 120, cfg.Tracker.IntervalSeconds)
	assert.Equal(t, "/tmp/override.db", cfg.Output.SQLitePath)
	assert.Equal(t, "SOL_USDT_rsi_log.csv", cfg.Output.CSVPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative period", func(c *Config) { c.Tracker.Period = -1 }, "period"},
		{"negative interval", func(c *Config) { c.Tracker.IntervalSeconds = -5 }, "interval"},
		{"negative jitter", func(c *Config) { c.Tracker.JitterSeconds = -1 }, "jitter"},
		{"jitter too large", func(c *Config) { c.Tracker.JitterSeconds = 60 }, "jitter"},
		{"empty symbol", func(c *Config) { c.DataSource.Symbol = "" }, "symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
