// Package persistence provides SQLite-based storage for player snapshots,
// the owned-building registry, and the inner-map cache. The simulation core
// never calls this from the tick path; the entrypoint wires periodic saves.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/colony-world/internal/engine"
	"github.com/talgya/colony-world/internal/world"
)

// DB wraps a SQLite connection for colony state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS player (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		tick INTEGER NOT NULL,
		money REAL NOT NULL,
		energy REAL NOT NULL,
		materials REAL NOT NULL,
		food REAL NOT NULL,
		threat_level REAL NOT NULL,
		research_current TEXT NOT NULL,
		research_progress INTEGER NOT NULL,
		research_completed_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS buildings (
		id TEXT PRIMARY KEY,
		def_id TEXT NOT NULL,
		acquired_tick INTEGER NOT NULL,
		ordinal INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS inner_maps (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		grid_json TEXT NOT NULL,
		PRIMARY KEY (x, y)
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_buildings_ordinal ON buildings(ordinal);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SavePlayer writes the complete player snapshot, replacing the previous
// one. The building registry is saved in list order so aggregation inputs
// reload in the same sequence.
func (db *DB) SavePlayer(s *engine.PlayerState) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	completedJSON, err := json.Marshal(s.Research.Completed)
	if err != nil {
		return fmt.Errorf("marshal completed set: %w", err)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO player
		(id, tick, money, energy, materials, food, threat_level,
		 research_current, research_progress, research_completed_json)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Tick, s.Money, s.Energy, s.Materials, s.Food, s.ThreatLevel,
		s.Research.Current, s.Research.Progress, string(completedJSON),
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM buildings"); err != nil {
		return err
	}
	for i, b := range s.Buildings {
		_, err := tx.Exec(
			"INSERT INTO buildings (id, def_id, acquired_tick, ordinal) VALUES (?, ?, ?, ?)",
			b.ID, b.DefID, b.AcquiredTick, i,
		)
		if err != nil {
			return fmt.Errorf("insert building %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// LoadPlayer reconstructs the saved player snapshot. The second return is
// false when no snapshot has been saved yet.
func (db *DB) LoadPlayer() (*engine.PlayerState, bool, error) {
	var row struct {
		Tick             uint64  `db:"tick"`
		Money            float64 `db:"money"`
		Energy           float64 `db:"energy"`
		Materials        float64 `db:"materials"`
		Food             float64 `db:"food"`
		ThreatLevel      float64 `db:"threat_level"`
		ResearchCurrent  string  `db:"research_current"`
		ResearchProgress int     `db:"research_progress"`
		CompletedJSON    string  `db:"research_completed_json"`
	}
	err := db.conn.Get(&row, "SELECT tick, money, energy, materials, food, threat_level, research_current, research_progress, research_completed_json FROM player WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load player: %w", err)
	}

	s := &engine.PlayerState{
		Tick:        row.Tick,
		Money:       row.Money,
		Energy:      row.Energy,
		Materials:   row.Materials,
		Food:        row.Food,
		ThreatLevel: row.ThreatLevel,
		Research: engine.ResearchState{
			Completed: make(map[string]bool),
			Current:   row.ResearchCurrent,
			Progress:  row.ResearchProgress,
		},
	}
	if err := json.Unmarshal([]byte(row.CompletedJSON), &s.Research.Completed); err != nil {
		return nil, false, fmt.Errorf("parse completed set: %w", err)
	}

	err = db.conn.Select(&s.Buildings,
		"SELECT id, def_id, acquired_tick FROM buildings ORDER BY ordinal")
	if err != nil {
		return nil, false, fmt.Errorf("load buildings: %w", err)
	}

	slog.Info("player snapshot loaded", "tick", s.Tick, "buildings", len(s.Buildings))
	return s, true, nil
}

// SaveInnerMap caches a generated inner map for its world tile.
func (db *DB) SaveInnerMap(im *world.InnerMap) error {
	grid, err := json.Marshal(im)
	if err != nil {
		return fmt.Errorf("marshal inner map: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO inner_maps (x, y, grid_json) VALUES (?, ?, ?)",
		im.ParentX, im.ParentY, string(grid),
	)
	return err
}

// LoadInnerMap returns the cached inner map for a tile, or false when the
// tile has never been cached.
func (db *DB) LoadInnerMap(x, y int) (*world.InnerMap, bool, error) {
	var grid string
	err := db.conn.Get(&grid, "SELECT grid_json FROM inner_maps WHERE x = ? AND y = ?", x, y)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load inner map (%d,%d): %w", x, y, err)
	}

	var im world.InnerMap
	if err := json.Unmarshal([]byte(grid), &im); err != nil {
		return nil, false, fmt.Errorf("parse inner map (%d,%d): %w", x, y, err)
	}
	return &im, true, nil
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. Returns false when the key is unset.
func (db *DB) GetMeta(key string) (string, bool, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
