package searcher

import "coins/game"

// Playout plays the rest of a hypothetical game under the assignment and returns the
// final scores. coins and scores are value copies, so the caller's state is untouched.
func Playout(coins game.Sequence, current game.Player, scores game.ScoreBoard, a Assignment) game.ScoreBoard {
	for !coins.IsEmpty() {
		move := a.Decide(current, coins, scores)
		scores.Credit(current, coins.Take(move))
		a.collector().AddSimulatedTurn()
		current = current.Opponent()
	}
	return scores
}
