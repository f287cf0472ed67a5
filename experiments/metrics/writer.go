package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Writer stores the results of one experiment run.
type Writer interface {
	WriteMatchups(matchups []MatchupConfig) error
	WriteGameRecords(records []GameRecord) error
	WriteMoveRecords(records []MoveRecord) error
	Close() error
}

type CSVWriter struct {
	baseDir string
}

// NewCSVWriter creates a subfolder of root named by experiment and current timestamp.
func NewCSVWriter(root, name string) (*CSVWriter, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &CSVWriter{
		baseDir: baseDir,
	}, nil
}

func (w *CSVWriter) Dir() string {
	return w.baseDir
}

func (w *CSVWriter) WriteMatchups(matchups []MatchupConfig) error {
	rows := make([][]string, 0, len(matchups))
	for _, m := range matchups {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			m.Alice.String(),
			m.Bob.String(),
		})
	}
	return w.write("matchups.csv", []string{"id", "alice", "bob"}, rows)
}

func (w *CSVWriter) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "alice", "bob", "starting_player", "alice_score", "bob_score", "winner", "turns", "start_time", "end_time", "duration", "coins"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Matchup),
			r.Strategies[0].String(),
			r.Strategies[1].String(),
			r.StartingPlayer.String(),
			strconv.Itoa(r.Scores[0]),
			strconv.Itoa(r.Scores[1]),
			r.Winner,
			strconv.Itoa(r.TotalMoves),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			joinCoins(r.Coins),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *CSVWriter) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "strategy", "move", "coin", "duration", "decisions", "oracle_evaluations", "simulated_turns"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player.String(),
			r.Strategy.String(),
			r.Move.String(),
			strconv.Itoa(r.Coin),
			r.Duration.String(),
			strconv.FormatInt(r.Decisions, 10),
			strconv.FormatInt(r.OracleEvaluations, 10),
			strconv.FormatInt(r.SimulatedTurns, 10),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *CSVWriter) Close() error {
	return nil
}

func (w *CSVWriter) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func joinCoins(coins []int) string {
	parts := make([]string, len(coins))
	for i, coin := range coins {
		parts[i] = strconv.Itoa(coin)
	}
	return strings.Join(parts, " ")
}
