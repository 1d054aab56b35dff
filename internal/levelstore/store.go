// Package levelstore persists generated levels in SQLite or PostgreSQL.
package levelstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
)

// ErrLevelNotFound is returned when a level lookup fails.
var ErrLevelNotFound = errors.New("level not found")

// ErrLevelExists is returned when saving a level whose ID is already stored.
var ErrLevelExists = errors.New("level already exists")

// Store wraps the database connection and persists generated levels.
// Each level is kept whole as a YAML payload; the indexed columns carry
// just enough metadata to list and filter without decoding.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Summary is one row of the level listing.
type Summary struct {
	ID         string    `json:"id"`
	Flow       string    `json:"flow"`
	DungeonID  int       `json:"dungeon_id"`
	Seed       int64     `json:"seed"`
	GridWidth  int       `json:"grid_width"`
	GridHeight int       `json:"grid_height"`
	NumRooms   int       `json:"num_rooms"`
	DoorCount  int       `json:"door_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Open connects to the configured database and creates the schema if it
// doesn't exist yet.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.Postgres.DSN()
	default:
		// Ensure directory exists
		dir := filepath.Dir(cfg.SQLitePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init statement failed: %w", err)
		}
	}

	if _, ok := dialect.(*PostgresDialect); ok {
		if cfg.Postgres.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		}
		if cfg.Postgres.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		}
		if cfg.Postgres.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		}
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// migrate creates the level table if it doesn't exist.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			flow TEXT NOT NULL,
			dungeon_id INTEGER NOT NULL DEFAULT 0,
			seed BIGINT NOT NULL,
			grid_width INTEGER NOT NULL,
			grid_height INTEGER NOT NULL,
			num_rooms INTEGER NOT NULL,
			door_count INTEGER NOT NULL,
			corridor_tiles INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			payload TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_levels_flow ON levels(flow)`,
		`CREATE INDEX IF NOT EXISTS idx_levels_created_at ON levels(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// Save stores a generated level. Returns ErrLevelExists if a level with
// the same ID is already stored.
func (s *Store) Save(lvl *level.Level) error {
	payload, err := lvl.EncodeYAML()
	if err != nil {
		return fmt.Errorf("failed to encode level: %w", err)
	}

	query := s.qb.Build(`INSERT INTO levels
		(id, flow, dungeon_id, seed, grid_width, grid_height, num_rooms, door_count, corridor_tiles, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = s.db.Exec(query,
		lvl.ID, lvl.Flow, lvl.DungeonID, lvl.Seed,
		lvl.Grid.Width(), lvl.Grid.Height(),
		lvl.Stats.NumRooms, lvl.Stats.DoorCount, lvl.Stats.CorridorTiles,
		lvl.CreatedAt.UTC(), string(payload),
	)
	if err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return ErrLevelExists
		}
		return fmt.Errorf("failed to save level: %w", err)
	}

	return nil
}

// Load retrieves a stored level by ID.
func (s *Store) Load(id string) (*level.Level, error) {
	query := s.qb.Build("SELECT payload FROM levels WHERE id = ?")

	var payload string
	err := s.db.QueryRow(query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLevelNotFound
		}
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	lvl, err := level.DecodeYAML([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to decode level %s: %w", id, err)
	}
	return lvl, nil
}

// List returns summaries of all stored levels, newest first.
func (s *Store) List() ([]Summary, error) {
	query := s.qb.Build(`SELECT id, flow, dungeon_id, seed, grid_width, grid_height, num_rooms, door_count, created_at
		FROM levels ORDER BY created_at DESC, id`)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query levels: %w", err)
	}
	return scanSummaries(rows)
}

// ListByFlow returns summaries of stored levels for one flow, newest first.
func (s *Store) ListByFlow(flow string) ([]Summary, error) {
	query := s.qb.Build(`SELECT id, flow, dungeon_id, seed, grid_width, grid_height, num_rooms, door_count, created_at
		FROM levels WHERE flow = ? ORDER BY created_at DESC, id`)

	rows, err := s.db.Query(query, flow)
	if err != nil {
		return nil, fmt.Errorf("failed to query levels: %w", err)
	}
	return scanSummaries(rows)
}

// Delete removes a stored level. Returns ErrLevelNotFound if no level
// has the given ID.
func (s *Store) Delete(id string) error {
	query := s.qb.Build("DELETE FROM levels WHERE id = ?")

	result, err := s.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrLevelNotFound
	}
	return nil
}

// Count returns the total number of stored levels.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM levels").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count levels: %w", err)
	}
	return count, nil
}

func scanSummaries(rows *sql.Rows) ([]Summary, error) {
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Flow, &sum.DungeonID, &sum.Seed,
			&sum.GridWidth, &sum.GridHeight, &sum.NumRooms, &sum.DoorCount, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan level row: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level rows: %w", err)
	}
	return out, nil
}
