package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"RSITracker/internal/model"
)

// SQLiteRecorder persists samples to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// Stats aggregates recorded samples over a time window.
type Stats struct {
	Samples  int
	MinPrice float64
	MaxPrice float64
	LastRSI  float64
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (summary queries run
	// while the tracker writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS samples (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			price       REAL NOT NULL,
			rsi         REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_samples_ts ON samples(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Record inserts one sample row.
func (r *SQLiteRecorder) Record(s *model.Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO samples (timestamp, recorded_at, price, rsi)
		VALUES (?,?,?,?)`,
		s.Time.Unix(), s.Timestamp(), s.Price, s.RSI,
	)
	return err
}

// StatsSince returns aggregates over samples recorded at or after the cutoff.
func (r *SQLiteRecorder) StatsSince(cutoff time.Time) (*Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := &Stats{}
	row := r.db.QueryRow(`SELECT COUNT(*), COALESCE(MIN(price),0), COALESCE(MAX(price),0)
		FROM samples WHERE timestamp >= ?`, cutoff.Unix())
	if err := row.Scan(&st.Samples, &st.MinPrice, &st.MaxPrice); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}
	if st.Samples > 0 {
		row = r.db.QueryRow(`SELECT rsi FROM samples WHERE timestamp >= ?
			ORDER BY id DESC LIMIT 1`, cutoff.Unix())
		if err := row.Scan(&st.LastRSI); err != nil {
			return nil, fmt.Errorf("scan last rsi: %w", err)
		}
	}
	return st, nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
