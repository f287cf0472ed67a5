package gamemaster

import (
	"coins/engine"
	"coins/game"
)

// UpdateGetter returns the next pending update without blocking; ok is false when none is pending.
type UpdateGetter func() (u Update, ok bool)

// Engine runs one game and publishes every applied turn to the presentation layer.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	// Advance plays the current mover's assigned strategy
	Advance() (engine.Turn, error)
	// Play applies a move chosen outside the assignment for the current mover
	Play(move game.Move) (engine.Turn, error)
	Mover() game.Player
	GameOver() bool
}

// Update is published after each turn. State is a copy owned by the receiver.
type Update struct {
	Turn     engine.Turn
	State    *game.GameState
	Hash     game.StateHash
	Finished bool
}
