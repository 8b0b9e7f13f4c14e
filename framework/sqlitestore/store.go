// Package sqlitestore persists dynamic frameworks in SQLite. It implements
// framework.Persister so a Catalog can flush runtime additions and restore
// them on the next start.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/framework/sqlitestore/migrations"
	"github.com/GhostMeshIO/SillyAxioms/phase"
	_ "modernc.org/sqlite"
)

const migrationTable = "schema_migrations"

// ErrNotConfigured is returned when a nil or closed Store is used.
var ErrNotConfigured = errors.New("sqlitestore: storage is not configured")

// Store persists frameworks in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ framework.Persister = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// SaveFrameworks upserts fs in one transaction; an existing name is overwritten
// but keeps its original position.
func (s *Store) SaveFrameworks(ctx context.Context, fs []framework.Framework) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM frameworks`).Scan(&next); err != nil {
		return fmt.Errorf("next position: %w", err)
	}
	stamp := s.now().UTC().UnixMilli()
	for _, f := range fs {
		r, err := toRow(f)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO frameworks (
			   name, position, coordinates, core_pattern, mechanisms,
			   equations, metrics, keywords, parents, created_at, updated_at
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
			   coordinates = excluded.coordinates,
			   core_pattern = excluded.core_pattern,
			   mechanisms = excluded.mechanisms,
			   equations = excluded.equations,
			   metrics = excluded.metrics,
			   keywords = excluded.keywords,
			   parents = excluded.parents,
			   updated_at = excluded.updated_at`,
			f.Name, next, r.coordinates, f.CorePattern, r.mechanisms,
			r.equations, r.metrics, r.keywords, r.parents, stamp, stamp,
		); err != nil {
			return fmt.Errorf("save framework %q: %w", f.Name, err)
		}
		next++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}

// LoadFrameworks returns every stored framework in first-save order.
func (s *Store) LoadFrameworks(ctx context.Context) ([]framework.Framework, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, coordinates, core_pattern, mechanisms, equations, metrics, keywords, parents
		   FROM frameworks ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query frameworks: %w", err)
	}
	defer rows.Close()

	var out []framework.Framework
	for rows.Next() {
		var (
			name, corePattern string
			r                 row
		)
		if err := rows.Scan(&name, &r.coordinates, &corePattern, &r.mechanisms,
			&r.equations, &r.metrics, &r.keywords, &r.parents); err != nil {
			return nil, fmt.Errorf("scan framework: %w", err)
		}
		f, err := r.framework(name, corePattern)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frameworks: %w", err)
	}

	return out, nil
}

// DeleteFramework removes name. Deleting a missing name is not an error.
func (s *Store) DeleteFramework(ctx context.Context, name string) error {
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM frameworks WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete framework %q: %w", name, err)
	}

	return nil
}

// row holds the JSON-encoded columns of one framework.
type row struct {
	coordinates, mechanisms, equations, metrics, keywords, parents string
}

func toRow(f framework.Framework) (row, error) {
	var (
		r   row
		err error
	)
	encode := func(dst *string, v any, empty string) {
		if err != nil {
			return
		}
		var b []byte
		if b, err = json.Marshal(v); err == nil {
			*dst = string(b)
			if *dst == "null" {
				*dst = empty
			}
		}
	}
	encode(&r.coordinates, f.Coordinate, "[]")
	encode(&r.mechanisms, f.Mechanisms, "[]")
	encode(&r.equations, f.Equations, "[]")
	encode(&r.metrics, f.Metrics, "{}")
	encode(&r.keywords, f.Keywords, "[]")
	encode(&r.parents, f.Parents, "[]")
	if err != nil {
		return row{}, fmt.Errorf("encode framework %q: %w", f.Name, err)
	}

	return r, nil
}

func (r row) framework(name, corePattern string) (framework.Framework, error) {
	f := framework.Framework{Name: name, CorePattern: corePattern}
	var coord phase.Coordinate
	for _, col := range []struct {
		raw string
		dst any
	}{
		{r.coordinates, &coord},
		{r.mechanisms, &f.Mechanisms},
		{r.equations, &f.Equations},
		{r.metrics, &f.Metrics},
		{r.keywords, &f.Keywords},
		{r.parents, &f.Parents},
	} {
		if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
			return framework.Framework{}, fmt.Errorf("decode framework %q: %w", name, err)
		}
	}
	f.Coordinate = coord

	return f, nil
}

// applyMigrations executes each embedded *.sql file at most once, in name order.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
	    name TEXT PRIMARY KEY,
	    applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var found int
		err := sqlDB.QueryRow(`SELECT 1 FROM `+migrationTable+` WHERE name = ?`, file).Scan(&found)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", file, err)
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		upSQL := upSection(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upSQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}

	return nil
}

// upSection returns the SQL between "-- +migrate Up" and "-- +migrate Down".
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	i := strings.Index(content, up)
	if i == -1 {
		return content
	}
	content = content[i+len(up):]
	if j := strings.Index(content, down); j != -1 {
		content = content[:j]
	}

	return content
}
