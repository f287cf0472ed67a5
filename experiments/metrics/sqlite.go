package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteTimeout = 5 * time.Second

// SQLiteWriter stores experiment results in a SQLite database; every run gets its own id.
type SQLiteWriter struct {
	db    *sql.DB
	runID int64
}

func NewSQLiteWriter(dbPath, name string) (*SQLiteWriter, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	res, err := db.ExecContext(ctx, `INSERT INTO experiment_runs (name, started_at_ms) VALUES (?, ?)`, name, time.Now().UTC().UnixMilli())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to register experiment run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteWriter{db: db, runID: runID}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS experiment_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    started_at_ms INTEGER NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS matchups (
    run_id INTEGER NOT NULL,
    id INTEGER NOT NULL,
    alice TEXT NOT NULL,
    bob TEXT NOT NULL,
    PRIMARY KEY (run_id, id)
)`,
		`
CREATE TABLE IF NOT EXISTS game_records (
    run_id INTEGER NOT NULL,
    id INTEGER NOT NULL,
    matchup INTEGER NOT NULL,
    alice TEXT NOT NULL,
    bob TEXT NOT NULL,
    starting_player TEXT NOT NULL,
    alice_score INTEGER NOT NULL,
    bob_score INTEGER NOT NULL,
    winner TEXT NOT NULL,
    turns INTEGER NOT NULL,
    started_at_ms INTEGER NOT NULL,
    duration_ns INTEGER NOT NULL,
    coins TEXT NOT NULL,
    PRIMARY KEY (run_id, id)
)`,
		`
CREATE TABLE IF NOT EXISTS move_records (
    run_id INTEGER NOT NULL,
    game INTEGER NOT NULL,
    step INTEGER NOT NULL,
    player TEXT NOT NULL,
    strategy TEXT NOT NULL,
    move TEXT NOT NULL,
    coin INTEGER NOT NULL,
    duration_ns INTEGER NOT NULL,
    decisions INTEGER NOT NULL,
    oracle_evaluations INTEGER NOT NULL,
    simulated_turns INTEGER NOT NULL,
    PRIMARY KEY (run_id, game, step)
)`,
	}
	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (w *SQLiteWriter) RunID() int64 {
	return w.runID
}

func (w *SQLiteWriter) WriteMatchups(matchups []MatchupConfig) error {
	return w.insert(`INSERT INTO matchups (run_id, id, alice, bob) VALUES (?, ?, ?, ?)`, len(matchups), func(i int) []any {
		m := matchups[i]
		return []any{w.runID, m.ID, m.Alice.String(), m.Bob.String()}
	})
}

func (w *SQLiteWriter) WriteGameRecords(records []GameRecord) error {
	return w.insert(`
INSERT INTO game_records (
    run_id, id, matchup, alice, bob, starting_player, alice_score, bob_score, winner, turns, started_at_ms, duration_ns, coins
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, len(records), func(i int) []any {
		r := records[i]
		return []any{
			w.runID, r.ID, r.Matchup, r.Strategies[0].String(), r.Strategies[1].String(), r.StartingPlayer.String(),
			r.Scores[0], r.Scores[1], r.Winner, r.TotalMoves, r.StartTime.UTC().UnixMilli(), int64(r.Duration), joinCoins(r.Coins),
		}
	})
}

func (w *SQLiteWriter) WriteMoveRecords(records []MoveRecord) error {
	return w.insert(`
INSERT INTO move_records (
    run_id, game, step, player, strategy, move, coin, duration_ns, decisions, oracle_evaluations, simulated_turns
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, len(records), func(i int) []any {
		r := records[i]
		return []any{
			w.runID, r.Game, r.Step, r.Player.String(), r.Strategy.String(), r.Move.String(), r.Coin,
			int64(r.Duration), r.Decisions, r.OracleEvaluations, r.SimulatedTurns,
		}
	})
}

// insert runs query once per row inside a single transaction.
func (w *SQLiteWriter) insert(query string, n int, args func(i int) []any) error {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (w *SQLiteWriter) Close() error {
	if w == nil || w.db == nil {
		return nil
	}
	return w.db.Close()
}
