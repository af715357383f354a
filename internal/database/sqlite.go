package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// sqliteSchema mirrors migrations/001_create_workouts.sql.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS workouts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	date       TEXT NOT NULL,
	label      TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exercises (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	workout_id INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	name       TEXT NOT NULL CHECK (name <> ''),
	weight     REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sets (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	exercise_id INTEGER NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	reps        INTEGER NOT NULL CHECK (reps >= 0)
);

CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
CREATE INDEX IF NOT EXISTS idx_exercises_workout_id ON exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_sets_exercise_id ON sets(exercise_id);
`

// openSQLite opens (creating if needed) the database file at path and
// applies the schema.
//
// Pragmas go in the DSN so every pooled connection gets them. A single open
// connection serializes writers.
func openSQLite(path string) (*sql.DB, error) {
	filePath := strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(filePath, '?'); i >= 0 {
		filePath = filePath[:i]
	}
	if dir := filepath.Dir(filePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
