// Package catalog persists batch conversion results to sqlite so repeated
// runs over the same archive can be audited and queried afterwards.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Catalog wraps the sqlite database holding run and file records.
type Catalog struct {
	*sql.DB
}

// Open opens (creating if necessary) the catalog at path and applies any
// pending schema migrations.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}

	c := &Catalog{db}
	if err := c.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// NewRunID returns a fresh identifier for one batch run.
func NewRunID() string {
	return uuid.NewString()
}

// FileRecord is the per-file outcome of one conversion attempt.
type FileRecord struct {
	RunID   string
	Path    string
	Status  string // "converted" or "skipped"
	Reason  string // failure reason for skipped files, empty otherwise
	Sweeps  int
	Samples int
}

// RecordFile stores the outcome of one file conversion.
func (c *Catalog) RecordFile(rec FileRecord) error {
	_, err := c.Exec(
		`INSERT INTO files (run_id, path, status, reason, sweeps, samples)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Path, rec.Status, rec.Reason, rec.Sweeps, rec.Samples,
	)
	if err != nil {
		return fmt.Errorf("failed to record file %s: %w", rec.Path, err)
	}
	return nil
}

// RecordRun stores the batch tally for a completed run.
func (c *Catalog) RecordRun(runID string, attempted, succeeded, skipped int, started time.Time) error {
	_, err := c.Exec(
		`INSERT INTO runs (run_id, attempted, succeeded, skipped, started_at)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, attempted, succeeded, skipped, started.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", runID, err)
	}
	return nil
}

// FilesForRun returns the file records of one run in insertion order.
func (c *Catalog) FilesForRun(runID string) ([]FileRecord, error) {
	rows, err := c.Query(
		`SELECT run_id, path, status, reason, sweeps, samples
		 FROM files WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files for run %s: %w", runID, err)
	}
	defer rows.Close()

	var recs []FileRecord
	for rows.Next() {
		var r FileRecord
		if err := rows.Scan(&r.RunID, &r.Path, &r.Status, &r.Reason, &r.Sweeps, &r.Samples); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// RunTally returns the stored tally for a run.
func (c *Catalog) RunTally(runID string) (attempted, succeeded, skipped int, err error) {
	err = c.QueryRow(
		`SELECT attempted, succeeded, skipped FROM runs WHERE run_id = ?`, runID,
	).Scan(&attempted, &succeeded, &skipped)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to query run %s: %w", runID, err)
	}
	return attempted, succeeded, skipped, nil
}
