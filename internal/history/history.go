// Package history persists sensor readings to the local SQLite store.
//
// Each successful sensor query can be recorded as one snapshot row: the
// device host, the full reading set as JSON, and a timestamp. The store
// is optional and disabled by default; the live command path never
// depends on it.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nerrad567/aircon-core/internal/aircon"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// schema is the single table this package owns. Created on Init; no
// migration chain for a one-table store.
const schema = `
CREATE TABLE IF NOT EXISTS sensor_history (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    host        TEXT NOT NULL,
    readings    TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sensor_history_host
    ON sensor_history(host, recorded_at DESC);
`

// Entry is one recorded sensor snapshot.
type Entry struct {
	ID         int64
	Host       string
	Readings   map[string]any
	RecordedAt time.Time
}

// Store records and retrieves sensor snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store over an open SQLite connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the sensor_history table if it does not exist.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: The underlying database error, if any
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

// Record inserts one sensor snapshot for a device.
//
// Readings are stored as a JSON object with native number/string values
// matching the parsed kinds.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - host: Device IP address the readings came from
//   - info: The full reading set from one sensor query
//
// Returns:
//   - error: nil on success, otherwise the underlying database error
func (s *Store) Record(ctx context.Context, host string, info aircon.SensorInfo) error {
	if host == "" {
		return fmt.Errorf("host is required")
	}

	readings := make(map[string]any, len(info))
	for key, v := range info {
		switch v.Kind() {
		case aircon.KindInt:
			i, _ := v.Int()
			readings[key] = i
		case aircon.KindFloat:
			f, _ := v.Float()
			readings[key] = f
		default:
			readings[key] = v.String()
		}
	}

	payload, err := json.Marshal(readings)
	if err != nil {
		return fmt.Errorf("marshalling readings: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO sensor_history (host, readings) VALUES (?, ?)",
		host,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting sensor history: %w", err)
	}

	return nil
}

// Recent returns the latest snapshots for a device, newest first.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - host: Device IP address
//   - limit: Maximum entries to return (default 50, max 200)
//
// Returns:
//   - []Entry: Snapshots ordered newest first (may be empty)
//   - error: The underlying database error, if any
func (s *Store) Recent(ctx context.Context, host string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, host, readings, recorded_at
		 FROM sensor_history
		 WHERE host = ?
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT ?`,
		host, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sensor history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			payload string
		)
		if err := rows.Scan(&e.ID, &e.Host, &payload, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning sensor history row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Readings); err != nil {
			return nil, fmt.Errorf("unmarshalling readings for entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sensor history: %w", err)
	}

	return entries, nil
}
