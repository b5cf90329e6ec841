package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the full schema history; statements are embedded so the
// seed command and tests can migrate without a migrations directory on disk.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_places",
		SQL: `
			CREATE TABLE IF NOT EXISTS places (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				history TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT 'Attraction',
				city TEXT NOT NULL DEFAULT '',
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				avg_visit_minutes INTEGER NOT NULL DEFAULT 60,
				base_popularity INTEGER NOT NULL DEFAULT 50,
				tags TEXT NOT NULL DEFAULT '',
				is_active INTEGER NOT NULL DEFAULT 1,
				created_at INTEGER NOT NULL,
				updated_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_places_name ON places(name);
			CREATE INDEX IF NOT EXISTS idx_places_city ON places(city);
		`,
	},
	{
		Version: 2,
		Name:    "create_check_ins",
		SQL: `
			CREATE TABLE IF NOT EXISTS check_ins (
				id TEXT PRIMARY KEY,
				place_id TEXT NOT NULL REFERENCES places(id),
				visitor_alias TEXT NOT NULL,
				source TEXT NOT NULL DEFAULT 'manual',
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_check_ins_place_time ON check_ins(place_id, created_at);
			CREATE INDEX IF NOT EXISTS idx_check_ins_time ON check_ins(created_at);
		`,
	},
	{
		Version: 3,
		Name:    "create_reviews",
		SQL: `
			CREATE TABLE IF NOT EXISTS reviews (
				id TEXT PRIMARY KEY,
				place_id TEXT NOT NULL REFERENCES places(id),
				reviewer_alias TEXT NOT NULL,
				rating INTEGER NOT NULL,
				comment TEXT NOT NULL,
				photos TEXT NOT NULL DEFAULT '',
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_reviews_place ON reviews(place_id, created_at);
		`,
	},
	{
		Version: 4,
		Name:    "create_guide_bookings",
		SQL: `
			CREATE TABLE IF NOT EXISTS guide_bookings (
				id TEXT PRIMARY KEY,
				guide_id TEXT NOT NULL,
				guide_name TEXT NOT NULL,
				guide_city TEXT NOT NULL,
				tourist_name TEXT NOT NULL,
				tourist_phone TEXT NOT NULL,
				preferred_date TEXT NOT NULL,
				preferred_time TEXT NOT NULL,
				duration_hours INTEGER NOT NULL,
				notes TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'pending',
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_guide_bookings_guide ON guide_bookings(guide_id, created_at);
		`,
	},
}

// Migrate applies all pending migrations on the given connection
func Migrate(conn *sql.DB) error {
	if err := initMigrationsTable(conn); err != nil {
		return err
	}

	applied, err := appliedMigrations(conn)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, m := range pending {
		if err := applyMigration(conn, m); err != nil {
			return err
		}
	}

	return nil
}

func initMigrationsTable(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := conn.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

func applyMigration(conn *sql.DB, migration Migration) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	log.Printf("Applied migration %d: %s", migration.Version, migration.Name)
	return nil
}
