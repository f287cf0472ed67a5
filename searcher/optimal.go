package searcher

import "coins/game"

// optimal plays the end with the larger net advantage, preferring the left on ties.
// Scores are ignored: the decision depends on the remaining coins only.
type optimal struct{}

func (optimal) Kind() Kind { return Optimal }

func (optimal) Decide(player game.Player, coins game.Sequence, scores game.ScoreBoard, a Assignment) game.Move {
	if coins.IsEmpty() {
		return game.NoMove
	}
	a.collector().AddDecision()

	left, right, evaluations := advantages(coins)
	a.collector().AddOracleEvaluations(evaluations)

	if left >= right {
		return game.TakeLeft
	}
	return game.TakeRight
}

// Advantages returns the mover's net advantage after taking the left and the right coin.
// Both are zero on an empty row.
func Advantages(coins game.Sequence) (left, right int) {
	if coins.IsEmpty() {
		return 0, 0
	}
	left, right, _ = advantages(coins)
	return left, right
}

// Each side is solved top-down from its own fresh memo.
func advantages(coins game.Sequence) (left, right, evaluations int) {
	n := coins.Len()

	leftMemo := NewMemo(n)
	left = coins[0] - Advantage(coins, 1, n-1, leftMemo)

	rightMemo := NewMemo(n)
	right = coins[n-1] - Advantage(coins, 0, n-2, rightMemo)

	return left, right, leftMemo.Evaluations() + rightMemo.Evaluations()
}
