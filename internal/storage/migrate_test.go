package storage

import (
	"database/sql"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestMigrateUpDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO tasks (id, title, date, priority, category) VALUES ('x', 't', '2026-09-01', 'LOW', 'WORK')`); err != nil {
		t.Fatalf("insert after migrate up: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if _, err := db.Exec(`SELECT 1 FROM tasks`); err == nil {
		t.Fatal("expected tasks table to be dropped")
	}
	if _, err := db.Exec(`SELECT 1 FROM collection_meta`); err == nil {
		t.Fatal("expected collection_meta table to be dropped")
	}

	// Idempotent re-apply.
	if err := MigrateUp(db); err != nil {
		t.Fatalf("re-apply migrate up: %v", err)
	}
}

func TestMigrationNames(t *testing.T) {
	up, err := migrationNames(".up.sql")
	if err != nil {
		t.Fatalf("list up migrations: %v", err)
	}
	if len(up) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for _, name := range up {
		if !strings.HasSuffix(name, ".up.sql") {
			t.Fatalf("down script %s leaked into the up set", name)
		}
	}
	if !sort.StringsAreSorted(up) {
		t.Fatalf("up migrations not in lexical order: %v", up)
	}

	down, err := migrationNames(".down.sql")
	if err != nil {
		t.Fatalf("list down migrations: %v", err)
	}
	if len(down) != len(up) {
		t.Fatalf("unpaired migrations: %d up, %d down", len(up), len(down))
	}
}
