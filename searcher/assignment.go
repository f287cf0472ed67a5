package searcher

import (
	"fmt"

	"coins/game"
)

type Option func(a *Assignment)

// WithMetrics reports every decision made through the assignment to collector.
func WithMetrics(collector MetricsCollector) Option {
	return func(a *Assignment) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// Assignment fixes who moves first and which strategy each player uses for one game.
type Assignment struct {
	first      game.Player
	strategies [2]Strategy
	metrics    MetricsCollector
}

// Assign builds an assignment from a strategy kind per player. Both players need a
// recognized kind, otherwise game.ErrInvalidAssignment is returned.
func Assign(first game.Player, kinds map[game.Player]Kind, options ...Option) (Assignment, error) {
	a := Assignment{
		first:   first,
		metrics: NewNoMetricsCollector(),
	}
	if !first.Valid() {
		return Assignment{}, fmt.Errorf("%w: unknown first player %v", game.ErrInvalidAssignment, first)
	}
	for player := range kinds {
		if !player.Valid() {
			return Assignment{}, fmt.Errorf("%w: strategy given for unknown player %v", game.ErrInvalidAssignment, player)
		}
	}
	for _, player := range game.Players {
		kind, ok := kinds[player]
		if !ok {
			return Assignment{}, fmt.Errorf("%w: no strategy for %v", game.ErrInvalidAssignment, player)
		}
		strategy, err := New(kind)
		if err != nil {
			return Assignment{}, fmt.Errorf("%v: %w", player, err)
		}
		a.strategies[player] = strategy
	}
	for _, option := range options {
		option(&a)
	}
	return a, nil
}

// Validate reports a zero or partially built assignment.
func (a Assignment) Validate() error {
	if !a.first.Valid() {
		return fmt.Errorf("%w: unknown first player %v", game.ErrInvalidAssignment, a.first)
	}
	for _, player := range game.Players {
		if a.strategies[player] == nil {
			return fmt.Errorf("%w: no strategy for %v", game.ErrInvalidAssignment, player)
		}
	}
	if a.metrics == nil {
		return fmt.Errorf("%w: no metrics collector", game.ErrInvalidAssignment)
	}
	return nil
}

func (a Assignment) First() game.Player {
	return a.first
}

// Mover returns the player on the move after turns turns have been played.
func (a Assignment) Mover(turns int) game.Player {
	if turns%2 == 0 {
		return a.first
	}
	return a.first.Opponent()
}

func (a Assignment) Strategy(player game.Player) Strategy {
	return a.strategies[player]
}

func (a Assignment) Kind(player game.Player) Kind {
	return a.strategies[player].Kind()
}

// Uses reports whether any player is assigned kind.
func (a Assignment) Uses(kind Kind) bool {
	for _, strategy := range a.strategies {
		if strategy != nil && strategy.Kind() == kind {
			return true
		}
	}
	return false
}

func (a Assignment) Metrics() MetricsCollector {
	return a.metrics
}

// Decide asks the strategy assigned to player for a move.
func (a Assignment) Decide(player game.Player, coins game.Sequence, scores game.ScoreBoard) game.Move {
	return a.strategies[player].Decide(player, coins, scores, a)
}

func (a Assignment) collector() MetricsCollector {
	if a.metrics == nil {
		return noMetrics
	}
	return a.metrics
}
