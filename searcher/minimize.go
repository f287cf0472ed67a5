package searcher

import "coins/game"

// minimizeOpponent plays out both moves under the full assignment and keeps the one
// leaving the opponent the lower final score, preferring the left on ties.
//
// The continuations reuse the assignment for both players, the mover included. When the
// mover is itself assigned minimizeOpponent every simulated turn of theirs branches again,
// without memoization, so the cost grows exponentially with the number of coins.
type minimizeOpponent struct{}

func (minimizeOpponent) Kind() Kind { return MinimizeOpponent }

func (minimizeOpponent) Decide(player game.Player, coins game.Sequence, scores game.ScoreBoard, a Assignment) game.Move {
	if coins.IsEmpty() {
		return game.NoMove
	}
	a.collector().AddDecision()
	opponent := player.Opponent()

	leftCoins, leftScores := coins, scores
	leftScores.Credit(player, leftCoins.PopFront())
	leftOutcome := Playout(leftCoins, opponent, leftScores, a)

	rightCoins, rightScores := coins, scores
	rightScores.Credit(player, rightCoins.PopBack())
	rightOutcome := Playout(rightCoins, opponent, rightScores, a)

	if leftOutcome.Of(opponent) <= rightOutcome.Of(opponent) {
		return game.TakeLeft
	}
	return game.TakeRight
}
