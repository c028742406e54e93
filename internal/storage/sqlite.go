// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is used by BestRuns when limit is not positive.
const DefaultLimit = 10

// Store manages the SQLite database connection for run records.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one completed level.
type Run struct {
	ID        string
	Pack      string
	LevelID   string
	Player    string
	Moves     int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level of a pack.
type LevelStats struct {
	LevelID     string
	Runs        int
	BestMoves   int
	BestElapsed time.Duration
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// created_at holds Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			pack TEXT NOT NULL,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(pack, level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(pack, level_id, moves, elapsed_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A missing ID is generated and a zero
// CreatedAt is set to the current time. Returns the ID of the stored run.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.Pack == "" || run.LevelID == "" {
		return "", errors.New("storage: run needs a pack and a level id")
	}
	if run.Moves < 0 || run.Elapsed < 0 {
		return "", fmt.Errorf("storage: invalid run: moves=%d elapsed=%s", run.Moves, run.Elapsed)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, pack, level_id, player, moves, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Pack, run.LevelID, run.Player,
		run.Moves, run.Elapsed.Milliseconds(), run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// BestRuns retrieves the top runs for one level.
// Results are ordered by fewest moves, then shortest time, then oldest first.
func (s *Store) BestRuns(pack, levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level_id, player, moves, elapsed_ms, created_at
		 FROM runs
		 WHERE pack = ? AND level_id = ?
		 ORDER BY moves ASC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		pack, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Best returns the best run for one level, or nil if the level has none.
func (s *Store) Best(pack, levelID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, pack, level_id, player, moves, elapsed_ms, created_at
		 FROM runs
		 WHERE pack = ? AND level_id = ?
		 ORDER BY moves ASC, elapsed_ms ASC, created_at ASC
		 LIMIT 1`,
		pack, levelID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LevelStats retrieves per-level statistics for every played level of a pack,
// ordered by level ID.
func (s *Store) LevelStats(pack string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MIN(elapsed_ms), MAX(created_at)
		 FROM runs
		 WHERE pack = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var elapsedMS, lastPlayed int64
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.BestMoves, &elapsedMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestElapsed = time.Duration(elapsedMS) * time.Millisecond
		st.LastPlayed = time.UnixMilli(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the runs of one level, or of the whole pack when
// levelID is empty. Returns the number of deleted runs.
func (s *Store) ClearRuns(pack, levelID string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if levelID == "" {
		res, err = s.db.Exec("DELETE FROM runs WHERE pack = ?", pack)
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE pack = ? AND level_id = ?", pack, levelID)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var elapsedMS, createdAt int64
	err := sc.Scan(&run.ID, &run.Pack, &run.LevelID, &run.Player, &run.Moves, &elapsedMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	run.CreatedAt = time.UnixMilli(createdAt)
	return run, nil
}
