package metrics

import (
	"time"

	"coins/game"
	"coins/searcher"
)

// MoveMetric records one turn of a game and the work behind its decision.
type MoveMetric struct {
	Step     int
	Player   game.Player
	Strategy searcher.Kind
	Move     game.Move
	Coin     int
	searcher.DecisionMetrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Strategies     [2]searcher.Kind // Indexed by game.Player
	Coins          []int            // Original row
	Scores         game.ScoreBoard
	Winner         string // "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Margin is Alice's final score minus Bob's.
func (g GameMetric) Margin() int {
	return g.Scores.Of(game.Alice) - g.Scores.Of(game.Bob)
}

// MatchupConfig pairs a strategy kind with each player.
type MatchupConfig struct {
	ID    int
	Alice searcher.Kind
	Bob   searcher.Kind
}

func (m MatchupConfig) Kinds() map[game.Player]searcher.Kind {
	return map[game.Player]searcher.Kind{game.Alice: m.Alice, game.Bob: m.Bob}
}

type GameRecord struct {
	ID      int
	Matchup int // MatchupConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
