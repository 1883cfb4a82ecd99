// Package runlog records a provenance trail for persisted runs.
package runlog

import (
	"database/sql"
	"fmt"
	"time"
)

// #region entry
// Entry is one provenance row for a run.
type Entry struct {
	RunID     string
	Event     string // "run_completed" | "fixture_exported" | "replayed"
	Detail    string
	CreatedAt time.Time
}
// #endregion entry

// #region log-event
// LogEvent writes a provenance entry to the run_log table.
func LogEvent(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO run_log (run_id, event, detail, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.RunID,
		entry.Event,
		nullIfEmpty(entry.Detail),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}
// #endregion log-event

// #region list-events
// ListEvents returns the provenance trail for one run, oldest first.
func ListEvents(db *sql.DB, runID string) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT run_id, event, detail, created_at FROM run_log
		 WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.Event, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if detail.Valid {
			e.Detail = detail.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-events

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
