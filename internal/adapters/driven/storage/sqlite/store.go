package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.UsageStore = (*Store)(nil)

// Store is a SQLite-backed usage history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.snipdeck/data/usage.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".snipdeck", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "usage.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// RecordLaunch stores a launch event and its per-snippet items.
func (s *Store) RecordLaunch(ctx context.Context, event driven.LaunchEvent) error {
	if event.ID == "" {
		return domain.ErrInvalidInput
	}

	if event.LaunchedAt.IsZero() {
		event.LaunchedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO launches (id, item_count, payload_size, launched_at)
		VALUES (?, ?, ?, ?)
	`, event.ID, event.ItemCount, event.PayloadSize, event.LaunchedAt)
	if err != nil {
		return fmt.Errorf("saving launch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO launch_items (launch_id, position, title)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, title := range event.Titles {
		if _, err := stmt.ExecContext(ctx, event.ID, i, title); err != nil {
			return fmt.Errorf("saving launch item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Top returns the n most-launched snippet titles. Ties break
// alphabetically so the order is deterministic.
func (s *Store) Top(ctx context.Context, n int) ([]driven.UsageSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT li.title, COUNT(*) AS launch_count, MAX(l.launched_at) AS last_used
		FROM launch_items li
		JOIN launches l ON l.id = li.launch_id
		GROUP BY li.title
		ORDER BY launch_count DESC, li.title ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("querying usage: %w", err)
	}
	defer rows.Close()

	var summaries []driven.UsageSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sum driven.UsageSummary
		var lastUsed sql.NullTime
		if err := rows.Scan(&sum.Title, &sum.LaunchCount, &lastUsed); err != nil {
			return nil, fmt.Errorf("scanning usage summary: %w", err)
		}
		if lastUsed.Valid {
			sum.LastUsed = lastUsed.Time
		}
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating usage summaries: %w", err)
	}

	return summaries, nil
}

// Get retrieves a launch event by ID.
func (s *Store) Get(ctx context.Context, id string) (*driven.LaunchEvent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, item_count, payload_size, launched_at
		FROM launches WHERE id = ?
	`, id)

	var event driven.LaunchEvent
	var launchedAt sql.NullTime
	if err := row.Scan(&event.ID, &event.ItemCount, &event.PayloadSize, &launchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning launch: %w", err)
	}
	if launchedAt.Valid {
		event.LaunchedAt = launchedAt.Time
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title FROM launch_items
		WHERE launch_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying launch items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning launch item: %w", err)
		}
		event.Titles = append(event.Titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating launch items: %w", err)
	}

	return &event, nil
}

// Count returns the total number of recorded launches.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM launches").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting launches: %w", err)
	}
	return count, nil
}
