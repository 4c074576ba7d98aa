package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, date, time, priority, category, completed, scheduled
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		var t Task
		var completed, scheduled int
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Date, &t.Time, &t.Priority, &t.Category, &completed, &scheduled); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		t.Scheduled = scheduled == 1
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		saved, err := r.hasSaved(ctx)
		if err != nil {
			return nil, err
		}
		if !saved {
			return nil, ErrNotFound
		}
	}
	return out, nil
}

// SaveTasks replaces the stored collection in one transaction. Position
// preserves collection order across reloads.
func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	for i, t := range tasks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, title, description, date, time, priority, category, completed, scheduled, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Description, t.Date, t.Time, t.Priority, t.Category,
			boolInt(t.Completed), boolInt(t.Scheduled), i,
		)
		if err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO collection_meta (key, saved) VALUES ('tasks', 1)
		ON CONFLICT(key) DO UPDATE SET saved = 1`); err != nil {
		return err
	}
	return tx.Commit()
}

// hasSaved distinguishes "never persisted" from "persisted empty".
func (r *SQLiteRepository) hasSaved(ctx context.Context) (bool, error) {
	var saved int
	err := r.db.QueryRowContext(ctx, `SELECT saved FROM collection_meta WHERE key = 'tasks'`).Scan(&saved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return saved == 1, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
