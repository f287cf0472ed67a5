package experiments

import (
	"coins/config"
	"coins/game"
	"coins/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ThroughputResult is the cost of one opening decision of a strategy on a row of Coins coins.
type ThroughputResult struct {
	Coins    int
	Alice    searcher.Kind
	Bob      searcher.Kind
	Move     game.Move
	Decision searcher.DecisionMetrics
}

// RunThroughputExperiment times Alice's opening decision for every matchup on random rows
// of each configured size. Minimize-opponent pairings show the exponential lookahead growth.
func RunThroughputExperiment(cfg config.ExperimentsConfig) ([]ThroughputResult, error) {
	kinds, err := cfg.StrategyKinds()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	log.Info().Msg("starting throughput experiment...")

	var results []ThroughputResult
	for _, n := range cfg.ScalingSizes {
		row := game.NewSequence(RandomRow(rng, n, cfg.MaxCoin))
		for _, matchup := range Matchups(kinds) {
			collector := searcher.NewMetricsCollector()
			a, err := searcher.Assign(game.Alice, matchup.Kinds(), searcher.WithMetrics(collector))
			if err != nil {
				return nil, err
			}

			collector.Start()
			move := a.Decide(game.Alice, row, game.ScoreBoard{})
			result := ThroughputResult{
				Coins:    n,
				Alice:    matchup.Alice,
				Bob:      matchup.Bob,
				Move:     move,
				Decision: collector.Complete(),
			}
			results = append(results, result)

			log.Info().
				Int("coins", n).
				Stringer("alice", matchup.Alice).
				Stringer("bob", matchup.Bob).
				Dur("duration", result.Decision.Duration).
				Int64("decisions", result.Decision.Decisions).
				Int64("oracle_evaluations", result.Decision.OracleEvaluations).
				Int64("simulated_turns", result.Decision.SimulatedTurns).
				Msg("opening decision")
		}
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
