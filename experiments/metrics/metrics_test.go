package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"coins/game"
	"coins/searcher"

	"github.com/stretchr/testify/require"
)

func sampleRecords() ([]MatchupConfig, []GameRecord, []MoveRecord) {
	matchups := []MatchupConfig{
		{ID: 1, Alice: searcher.Optimal, Bob: searcher.Greedy},
		{ID: 2, Alice: searcher.Greedy, Bob: searcher.Greedy},
	}
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	games := []GameRecord{
		{ID: 1, Matchup: 1, GameMetric: GameMetric{
			StartingPlayer: game.Alice,
			Strategies:     [2]searcher.Kind{searcher.Optimal, searcher.Greedy},
			Coins:          []int{2, 6},
			Scores:         game.ScoreBoard{6, 2},
			Winner:         "Alice",
			StartTime:      start,
			EndTime:        start.Add(2 * time.Second),
			Duration:       2 * time.Second,
			TotalMoves:     2,
		}},
		{ID: 2, Matchup: 1, GameMetric: GameMetric{
			StartingPlayer: game.Bob,
			Strategies:     [2]searcher.Kind{searcher.Optimal, searcher.Greedy},
			Coins:          []int{1, 5, 2},
			Scores:         game.ScoreBoard{5, 3},
			Winner:         "Alice",
			StartTime:      start,
			EndTime:        start.Add(3 * time.Second),
			Duration:       3 * time.Second,
			TotalMoves:     3,
		}},
		{ID: 3, Matchup: 2, GameMetric: GameMetric{
			StartingPlayer: game.Alice,
			Strategies:     [2]searcher.Kind{searcher.Greedy, searcher.Greedy},
			Coins:          []int{4, 4},
			Scores:         game.ScoreBoard{4, 4},
			StartTime:      start,
			TotalMoves:     2,
		}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Alice, Strategy: searcher.Optimal, Move: game.TakeRight, Coin: 6}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.Bob, Strategy: searcher.Greedy, Move: game.TakeLeft, Coin: 2}},
	}
	return matchups, games, moves
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriter(t *testing.T) {
	w, err := NewCSVWriter(t.TempDir(), "matchup")
	require.NoError(t, err)
	defer w.Close()

	matchups, games, moves := sampleRecords()
	require.NoError(t, w.WriteMatchups(matchups))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	rows := readCSV(t, filepath.Join(w.Dir(), "matchups.csv"))
	require.Equal(t, [][]string{{"id", "alice", "bob"}, {"1", "optimal", "greedy"}, {"2", "greedy", "greedy"}}, rows)

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 4)
	require.Equal(t, []string{"2", "1", "optimal", "greedy", "Bob", "5", "3", "Alice", "3"}, rows[2][:9])
	require.Equal(t, "1 5 2", rows[2][12])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "1", "Alice", "optimal", "right", "6"}, rows[1][:6])
}

func TestSQLiteWriter(t *testing.T) {
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "results", "experiments.db"), "matchup")
	require.NoError(t, err)
	defer w.Close()
	require.Positive(t, w.RunID())

	matchups, games, moves := sampleRecords()
	require.NoError(t, w.WriteMatchups(matchups))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	count := func(table string) int {
		var n int
		require.NoError(t, w.db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE run_id = ?`, w.RunID()).Scan(&n))
		return n
	}
	require.Equal(t, 2, count("matchups"))
	require.Equal(t, 3, count("game_records"))
	require.Equal(t, 2, count("move_records"))

	var winner, coins string
	require.NoError(t, w.db.QueryRow(`SELECT winner, coins FROM game_records WHERE run_id = ? AND id = 3`, w.RunID()).Scan(&winner, &coins))
	require.Equal(t, "", winner)
	require.Equal(t, "4 4", coins)

	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := NewSQLiteWriter("  ", "matchup")
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	_, games, _ := sampleRecords()

	summaries := Summarize(games)
	require.Len(t, summaries, 2)

	first := summaries[0]
	require.Equal(t, 1, first.Matchup)
	require.Equal(t, 2, first.Games)
	require.Equal(t, 2, first.AliceWins)
	require.Zero(t, first.BobWins)
	require.InDelta(t, 3.0, first.MeanMargin, 1e-9)
	require.InDelta(t, 1.4142135, first.StdDevMargin, 1e-6)
	require.InDelta(t, 1.0, first.MeanTurnTime, 1e-9)

	second := summaries[1]
	require.Equal(t, 1, second.Draws)
	require.Zero(t, second.MeanMargin)
	require.Zero(t, second.StdDevMargin)

	require.Empty(t, Summarize(nil))
}

func TestMargin(t *testing.T) {
	require.Equal(t, -3, GameMetric{Scores: game.ScoreBoard{2, 5}}.Margin())
}
