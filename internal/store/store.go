// Package store persists sampling runs in SQLite.
package store

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id          TEXT PRIMARY KEY,
	successes       INTEGER NOT NULL,
	trials          INTEGER NOT NULL,
	sample_count    INTEGER NOT NULL,
	proposal_scale  REAL NOT NULL,
	seed            INTEGER,
	accepted        INTEGER NOT NULL,
	chain           BLOB NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	event       TEXT NOT NULL,
	detail      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`
// #endregion schema

// #region store-struct
// Store manages persisted runs in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. runlog).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region save-run
// SaveRun inserts a completed run. An empty RunID gets a fresh UUID; the
// assigned ID is returned.
func (s *Store) SaveRun(rec RunRecord) (string, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var seedPtr interface{}
	if rec.Seed != nil {
		seedPtr = int64(*rec.Seed)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, successes, trials, sample_count, proposal_scale, seed, accepted, chain, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Successes, rec.Trials, rec.SampleCount, rec.ProposalScale,
		seedPtr, rec.Accepted, encodeChain(rec.Chain), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return rec.RunID, nil
}
// #endregion save-run

// #region get-run
// GetRun retrieves a run, chain included, by ID.
func (s *Store) GetRun(id string) (RunRecord, error) {
	var rec RunRecord
	var seed sql.NullInt64
	var chainBlob []byte
	var createdStr string

	err := s.db.QueryRow(
		`SELECT run_id, successes, trials, sample_count, proposal_scale, seed, accepted, chain, created_at
		 FROM runs WHERE run_id = ?`, id,
	).Scan(&rec.RunID, &rec.Successes, &rec.Trials, &rec.SampleCount, &rec.ProposalScale,
		&seed, &rec.Accepted, &chainBlob, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}

	if seed.Valid {
		v := uint64(seed.Int64)
		rec.Seed = &v
	}
	rec.Chain = decodeChain(chainBlob)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}
// #endregion get-run

// #region latest-run
// LatestRun returns the most recently saved run.
func (s *Store) LatestRun() (RunRecord, error) {
	var id string
	err := s.db.QueryRow(
		`SELECT run_id FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("latest run: %w", err)
	}
	return s.GetRun(id)
}
// #endregion latest-run

// #region list-runs
// ListRuns returns the most recent runs, newest first, without chain blobs.
func (s *Store) ListRuns(limit int) ([]RunListing, error) {
	rows, err := s.db.Query(
		`SELECT run_id, successes, trials, sample_count, proposal_scale, seed, accepted, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var listings []RunListing
	for rows.Next() {
		var l RunListing
		var seed sql.NullInt64
		var createdStr string
		if err := rows.Scan(&l.RunID, &l.Successes, &l.Trials, &l.SampleCount,
			&l.ProposalScale, &seed, &l.Accepted, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if seed.Valid {
			v := uint64(seed.Int64)
			l.Seed = &v
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
// #endregion list-runs

// #region chain-encoding
func encodeChain(chain []float64) []byte {
	buf := make([]byte, len(chain)*8)
	for i, v := range chain {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeChain(b []byte) []float64 {
	chain := make([]float64, len(b)/8)
	for i := range chain {
		chain[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return chain
}
// #endregion chain-encoding
