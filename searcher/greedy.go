package searcher

import "coins/game"

// greedy takes the larger end, preferring the left on ties.
type greedy struct{}

func (greedy) Kind() Kind { return Greedy }

func (greedy) Decide(player game.Player, coins game.Sequence, scores game.ScoreBoard, a Assignment) game.Move {
	if coins.IsEmpty() {
		return game.NoMove
	}
	a.collector().AddDecision()

	if coins.Left() >= coins.Right() {
		return game.TakeLeft
	}
	return game.TakeRight
}
