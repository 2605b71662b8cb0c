package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Store keeps a log of translation attempts. It is write-mostly: nothing in
// the translation path reads it back.
type Store struct {
	db *sql.DB
}

// Entry is one recorded translation attempt.
type Entry struct {
	ID             string
	InputText      string
	TargetLanguage string
	Status         string
	ErrorKind      string
	ErrorMessage   string
	TranslatedText string
	Model          string
	LatencyMs      int64
	CreatedAt      time.Time
}

type HistoryStats struct {
	TotalEntries int
	Succeeded    int
	Failed       int
	AvgLatencyMs float64
	ByErrorKind  map[string]int
	ByTargetLang map[string]int
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_history (
		id TEXT PRIMARY KEY,
		input_text TEXT NOT NULL,
		target_language TEXT NOT NULL,
		status TEXT NOT NULL,
		error_kind TEXT DEFAULT '',
		error_message TEXT DEFAULT '',
		translated_text TEXT DEFAULT '',
		model TEXT DEFAULT '',
		latency_ms INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_created ON translation_history(created_at);
	CREATE INDEX IF NOT EXISTS idx_history_status ON translation_history(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveEntry inserts e, assigning an ID and timestamp when they are empty.
// It returns the stored ID.
func (s *Store) SaveEntry(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_history (id, input_text, target_language, status, error_kind, error_message, translated_text, model, latency_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.InputText, e.TargetLanguage, e.Status, e.ErrorKind, e.ErrorMessage, e.TranslatedText, e.Model, e.LatencyMs, e.CreatedAt)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// ListHistory returns up to limit entries, newest first. limit <= 0 means no limit.
func (s *Store) ListHistory(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_text, target_language, status, error_kind, error_message, translated_text, model, latency_ms, created_at FROM translation_history ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.InputText, &e.TargetLanguage, &e.Status, &e.ErrorKind, &e.ErrorMessage, &e.TranslatedText, &e.Model, &e.LatencyMs, &e.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// DeleteEntry permanently removes a history entry by ID.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_history WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("history entry %s not found", id)
	}
	return nil
}

// ClearHistory removes all history entries.
func (s *Store) ClearHistory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_history`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats returns summary statistics for the history log.
func (s *Store) Stats(ctx context.Context) (*HistoryStats, error) {
	stats := &HistoryStats{
		ByErrorKind:  map[string]int{},
		ByTargetLang: map[string]int{},
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM translation_history`).Scan(
		&stats.TotalEntries,
		&stats.Succeeded,
		&stats.Failed,
		&stats.AvgLatencyMs,
	)
	if err != nil {
		return nil, err
	}

	if err := s.countBy(ctx, "error_kind", `WHERE status = 'failed'`, stats.ByErrorKind); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "target_language", "", stats.ByTargetLang); err != nil {
		return nil, err
	}
	return stats, nil
}

// countBy groups rows by a fixed column name; column is never user input.
func (s *Store) countBy(ctx context.Context, column, where string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) FROM translation_history %s GROUP BY %s`, column, where, column))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		into[key] = n
	}
	return rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
