package experiments

import (
	"fmt"

	"coins/game"
	"coins/searcher"
)

// Scenario is a named strategy pairing played on the reference row.
type Scenario struct {
	ID    int
	Label string
	Alice searcher.Kind
	Bob   searcher.Kind
}

func (s Scenario) Kinds() map[game.Player]searcher.Kind {
	return map[game.Player]searcher.Kind{game.Alice: s.Alice, game.Bob: s.Bob}
}

var Scenarios = []Scenario{
	{ID: 1, Label: "Alice (optimal) vs. Bob (largest coin)", Alice: searcher.Optimal, Bob: searcher.Greedy},
	{ID: 2, Label: "Alice (largest coin) vs. Bob (optimal)", Alice: searcher.Greedy, Bob: searcher.Optimal},
	{ID: 3, Label: "Alice (optimal) vs. Bob (optimal)", Alice: searcher.Optimal, Bob: searcher.Optimal},
	{ID: 4, Label: "Alice (largest coin) vs. Bob (largest coin)", Alice: searcher.Greedy, Bob: searcher.Greedy},
	{ID: 5, Label: "Bob (optimal) vs. Alice (minimize Bob's gain)", Alice: searcher.MinimizeOpponent, Bob: searcher.Optimal},
	{ID: 6, Label: "Alice (optimal) vs. Bob (minimize Alice's gain)", Alice: searcher.Optimal, Bob: searcher.MinimizeOpponent},
}

func ScenarioByID(id int) (Scenario, error) {
	for _, s := range Scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: unknown scenario %d", game.ErrInvalidAssignment, id)
}
