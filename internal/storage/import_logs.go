package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Import statuses.
const (
	ImportRunning = "running"
	ImportSuccess = "success"
	ImportError   = "error"
)

// ImportLog records one catalog import run.
type ImportLog struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	RowsRead     int       `json:"rows_read"`
	RowsSkipped  int       `json:"rows_skipped"`
	RowsInserted int64     `json:"rows_inserted"`
	DurationMs   *int      `json:"duration_ms"`
	ErrorMessage *string   `json:"error_message"`
}

// InsertImportLog creates a new import log entry and returns its ID. A zero
// ID is replaced with a random one.
func (db *DB) InsertImportLog(ctx context.Context, log ImportLog) (uuid.UUID, error) {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO import_logs (id, source, status, rows_read, rows_skipped, rows_inserted, duration_ms, error_message)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		log.ID, log.Source, log.Status, log.RowsRead, log.RowsSkipped, log.RowsInserted,
		log.DurationMs, log.ErrorMessage,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting import log: %w", err)
	}
	return log.ID, nil
}

// UpdateImportLog updates an existing import log entry (typically from "running" to "success" or "error").
func (db *DB) UpdateImportLog(ctx context.Context, id uuid.UUID, log ImportLog) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE import_logs SET
		 status = $2, rows_read = $3, rows_skipped = $4, rows_inserted = $5,
		 duration_ms = $6, error_message = $7
		 WHERE id = $1`,
		id, log.Status, log.RowsRead, log.RowsSkipped, log.RowsInserted,
		log.DurationMs, log.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("updating import log %s: %w", id, err)
	}
	return nil
}

// QueryImportLogs returns the most recent import logs.
func (db *DB) QueryImportLogs(ctx context.Context, limit int) ([]ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, created_at, source, status, rows_read, rows_skipped, rows_inserted, duration_ms, error_message
		 FROM import_logs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying import logs: %w", err)
	}
	defer rows.Close()

	result := []ImportLog{}
	for rows.Next() {
		var l ImportLog
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.Source, &l.Status,
			&l.RowsRead, &l.RowsSkipped, &l.RowsInserted, &l.DurationMs, &l.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scanning import log: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
