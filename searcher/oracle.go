package searcher

import (
	"fmt"

	"coins/game"
)

// Memo caches the net advantage of every sub-range [i..j] of one row.
// It belongs to a single top-level oracle call and is discarded afterwards.
type Memo struct {
	n           int
	values      []int
	known       []bool
	evaluations int
}

func NewMemo(n int) *Memo {
	return &Memo{
		n:      n,
		values: make([]int, n*n),
		known:  make([]bool, n*n),
	}
}

// Evaluations counts the sub-ranges computed (cache misses) so far.
func (m *Memo) Evaluations() int {
	return m.evaluations
}

func (m *Memo) key(i, j int) int {
	return i*m.n + j
}

// Advantage returns the mover's optimal total minus the opponent's over coins[i..j],
// with both sides playing optimally. Indices refer to the original row.
func Advantage(coins game.Sequence, i, j int, memo *Memo) int {
	if i > j {
		return 0
	}
	if memo.n != len(coins) {
		panic(fmt.Sprintf("memo sized for %d coins used on %d", memo.n, len(coins)))
	}
	if i < 0 || j >= len(coins) {
		panic(fmt.Sprintf("sub-range [%d..%d] outside row of %d coins", i, j, len(coins)))
	}

	k := memo.key(i, j)
	if memo.known[k] {
		return memo.values[k]
	}

	best := coins[i]
	if i < j {
		left := coins[i] - Advantage(coins, i+1, j, memo)
		right := coins[j] - Advantage(coins, i, j-1, memo)
		best = max(left, right)
	}

	memo.values[k] = best
	memo.known[k] = true
	memo.evaluations++
	return best
}
