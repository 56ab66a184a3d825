package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Symbol  string `yaml:"symbol"`
		BaseURL string `yaml:"base_url"` // optional Binance-compatible endpoint override
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Tracker struct {
		Period          int `yaml:"period"`
		IntervalSeconds int `yaml:"interval_seconds"`
		JitterSeconds   int `yaml:"jitter_seconds"`
	} `yaml:"tracker"`
	Output struct {
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"output"`
	Schedule struct {
		SummaryCron string `yaml:"summary_cron"`
	} `yaml:"schedule"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TRACKER_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BINANCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("RSI_PERIOD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tracker.Period = n
		}
	}
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tracker.IntervalSeconds = n
		}
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Output.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "BTC/USDT"
	}
	if cfg.Tracker.Period == 0 {
		cfg.Tracker.Period = 14
	}
	if cfg.Tracker.IntervalSeconds == 0 {
		cfg.Tracker.IntervalSeconds = 60
	}
	if cfg.Tracker.JitterSeconds == 0 {
		cfg.Tracker.JitterSeconds = 2
	}
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = DefaultCSVPath(cfg.DataSource.Symbol)
	}
	if cfg.Schedule.SummaryCron == "" {
		cfg.Schedule.SummaryCron = "0 0 0 * * *"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// DefaultCSVPath derives the log filename from the symbol, e.g.
// "BTC/USDT" -> "BTC_USDT_rsi_log.csv".
func DefaultCSVPath(symbol string) string {
	return strings.ReplaceAll(symbol, "/", "_") + "_rsi_log.csv"
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.Tracker.Period <= 0 {
		return fmt.Errorf("tracker.period must be positive")
	}
	if c.Tracker.IntervalSeconds <= 0 {
		return fmt.Errorf("tracker.interval_seconds must be positive")
	}
	if c.Tracker.JitterSeconds < 0 {
		return fmt.Errorf("tracker.jitter_seconds must not be negative")
	}
	if c.Tracker.JitterSeconds >= c.Tracker.IntervalSeconds {
		return fmt.Errorf("tracker.jitter_seconds must be smaller than the interval")
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("output.csv_path is required")
	}
	return nil
}

// Interval returns the polling interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Tracker.IntervalSeconds) * time.Second
}

// Jitter returns the jitter bound as a duration.
func (c *Config) Jitter() time.Duration {
	return time.Duration(c.Tracker.JitterSeconds) * time.Second
}
