package game

import "errors"

var (
	// ErrInvalidState is returned when a turn or decision is requested against an empty row.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidAssignment is returned for an unknown strategy kind or a player without a strategy.
	ErrInvalidAssignment = errors.New("invalid assignment")

	ErrIllegalMove = errors.New("illegal move")
)
