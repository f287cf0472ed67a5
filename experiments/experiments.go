package experiments

import (
	"fmt"

	"coins/config"
	"coins/engine"
	"coins/experiments/metrics"
	"coins/game"
	"coins/meta"
	"coins/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Matchups pairs every kind with every kind, Alice's first.
func Matchups(kinds []searcher.Kind) []metrics.MatchupConfig {
	matchups := make([]metrics.MatchupConfig, 0, len(kinds)*len(kinds))
	for _, alice := range kinds {
		for _, bob := range kinds {
			matchups = append(matchups, metrics.MatchupConfig{ID: len(matchups) + 1, Alice: alice, Bob: bob})
		}
	}
	return matchups
}

// RandomRow draws n coins valued 1..maxCoin.
func RandomRow(rng *rand.Rand, n, maxCoin int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = 1 + rng.Intn(maxCoin)
	}
	return row
}

// RunMatchupExperiment plays cfg.Games games per matchup and stores the records with writer.
// The first game of each matchup uses the reference row, the rest draw random rows.
// The first mover alternates between Alice and Bob.
func RunMatchupExperiment(cfg config.ExperimentsConfig, writer metrics.Writer) ([]metrics.Summary, error) {
	kinds, err := cfg.StrategyKinds()
	if err != nil {
		return nil, err
	}
	matchups := Matchups(kinds)
	rng := rand.New(rand.NewSource(cfg.Seed))

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting matchup experiment...")

	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between alice=%v and bob=%v...", mi+1, len(matchups), matchup.Alice, matchup.Bob)

		for i := 0; i < cfg.Games; i++ {
			row := meta.REFERENCE_COINS
			if i > 0 {
				row = RandomRow(rng, cfg.RowLength, cfg.MaxCoin)
			}
			first := game.Alice
			if i%2 == 1 {
				first = game.Bob
			}

			gameMetric, moveMetrics, err := RunGame(row, first, matchup.Kinds())
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", matchup.ID, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Matchup:    matchup.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	log.Info().Msg("completed matchup experiment")

	if err := writer.WriteMatchups(matchups); err != nil {
		return nil, fmt.Errorf("failed to store matchups: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summaries := metrics.Summarize(gameRecords)
	for _, s := range summaries {
		m := matchups[s.Matchup-1]
		log.Info().
			Stringer("alice", m.Alice).
			Stringer("bob", m.Bob).
			Int("games", s.Games).
			Int("alice_wins", s.AliceWins).
			Int("bob_wins", s.BobWins).
			Int("draws", s.Draws).
			Float64("mean_margin", s.MeanMargin).
			Float64("stddev_margin", s.StdDevMargin).
			Msg("matchup summary")
	}
	return summaries, nil
}

// RunGame plays one game on row with per-move metrics collection.
func RunGame(row []int, first game.Player, kinds map[game.Player]searcher.Kind) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a, err := engine.AssignStrategies(first, kinds, searcher.WithMetrics(searcher.NewMetricsCollector()))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return engine.LocalEngine(row, a).Run()
}

// OpenWriter creates the record sink configured for an experiment.
func OpenWriter(cfg config.ExperimentsConfig, name string) (metrics.Writer, error) {
	switch cfg.Sink {
	case "csv":
		w, err := metrics.NewCSVWriter(cfg.OutputDir, name)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("writing records to %s", w.Dir())
		return w, nil
	case "sqlite":
		w, err := metrics.NewSQLiteWriter(cfg.Database, name)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("writing records to %s as run %d", cfg.Database, w.RunID())
		return w, nil
	default:
		return nil, fmt.Errorf("unknown experiments sink %q", cfg.Sink)
	}
}
