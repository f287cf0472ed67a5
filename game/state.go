package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the live row, the score board and the turn counter of one game.
// Play never mutates the receiver; it returns the successor state.
type GameState struct {
	Coins    Sequence   // Remaining coins
	Scores   ScoreBoard // Totals credited so far
	Turn     int        // Number of turns already played
	Total    int        // Sum of the original row
	LastMove Move       // NoMove before the first turn
}

// NewGameState initializes a game over a copy of values with zero scores.
func NewGameState(values []int) *GameState {
	coins := NewSequence(values)
	return &GameState{
		Coins: coins,
		Total: coins.Sum(),
	}
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Coins:    gs.Coins.Copy(),
		Scores:   gs.Scores,
		Turn:     gs.Turn,
		Total:    gs.Total,
		LastMove: gs.LastMove,
	}
}

func (gs GameState) IsFinished() bool {
	return gs.Coins.IsEmpty()
}

// LegalMoves returns both ends while coins remain. On a single coin both moves take the same coin.
func (gs GameState) LegalMoves() []Move {
	if gs.IsFinished() {
		return nil
	}
	return []Move{TakeLeft, TakeRight}
}

// Play applies move for mover and returns the successor state along with the coin taken.
func (gs GameState) Play(mover Player, move Move) (*GameState, int, error) {
	if gs.IsFinished() {
		return nil, 0, fmt.Errorf("%w: no coins left after %d turns", ErrInvalidState, gs.Turn)
	}
	if !mover.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown mover %v", ErrInvalidAssignment, mover)
	}
	if move != TakeLeft && move != TakeRight {
		return nil, 0, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	next := gs.Copy()
	coin := next.Coins.Take(move)
	next.Scores.Credit(mover, coin)
	next.Turn++
	next.LastMove = move
	return next, coin, nil
}

// Conserved reports whether credited and remaining coins still add up to the original row.
func (gs GameState) Conserved() bool {
	return gs.Scores.Total()+gs.Coins.Sum() == gs.Total
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	for _, score := range gs.Scores {
		binary.Write(hasher, binary.LittleEndian, int64(score))
	}
	for _, coin := range gs.Coins {
		binary.Write(hasher, binary.LittleEndian, int64(coin))
	}

	return StateHash(hasher.Sum64())
}

// Winner returns the leading player's name once the row is empty, "" while in progress or on a draw.
func (gs GameState) Winner() string {
	if !gs.IsFinished() {
		return ""
	}
	if p, ok := gs.Scores.Leader(); ok {
		return p.String()
	}
	return ""
}
