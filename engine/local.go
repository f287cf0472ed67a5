package engine

import (
	"errors"
	"fmt"
	"time"

	"coins/experiments/metrics"
	"coins/game"
	"coins/meta"
	"coins/searcher"

	"github.com/rs/zerolog/log"
)

// Turn describes one applied move. Remaining is a copy owned by the receiver.
type Turn struct {
	Number    int // 1-based
	Mover     game.Player
	Move      game.Move
	Coin      int
	Remaining game.Sequence
	Scores    game.ScoreBoard
	Metrics   searcher.DecisionMetrics
}

// InitializeGame creates the state of a new game over values with zero scores.
func InitializeGame(values []int) *game.GameState {
	return game.NewGameState(values)
}

// AssignStrategies fixes the first player and a strategy kind for each player.
func AssignStrategies(first game.Player, kinds map[game.Player]searcher.Kind, options ...searcher.Option) (searcher.Assignment, error) {
	return searcher.Assign(first, kinds, options...)
}

// StepTurn asks the mover's strategy for a move and applies it, returning the turn
// and the successor state. The given state is left untouched.
func StepTurn(state *game.GameState, a searcher.Assignment) (Turn, *game.GameState, error) {
	if state == nil {
		return Turn{}, nil, fmt.Errorf("%w: no game state", game.ErrInvalidState)
	}
	if state.IsFinished() {
		return Turn{}, nil, fmt.Errorf("%w: game finished after %d turns", game.ErrInvalidState, state.Turn)
	}
	if err := a.Validate(); err != nil {
		return Turn{}, nil, err
	}

	mover := a.Mover(state.Turn)
	collector := a.Metrics()
	collector.Start()
	move := a.Decide(mover, state.Coins, state.Scores)
	decision := collector.Complete()

	next, coin, err := state.Play(mover, move)
	if err != nil {
		return Turn{}, nil, fmt.Errorf("%v played %v: %w", mover, move, err)
	}

	return Turn{
		Number:    next.Turn,
		Mover:     mover,
		Move:      move,
		Coin:      coin,
		Remaining: next.Coins.Copy(),
		Scores:    next.Scores,
		Metrics:   decision,
	}, next, nil
}

func IsFinished(state *game.GameState) bool {
	return state == nil || state.IsFinished()
}

// FinalScores is only defined once the game is finished.
func FinalScores(state *game.GameState) (game.ScoreBoard, error) {
	if state == nil {
		return game.ScoreBoard{}, nil
	}
	if !state.IsFinished() {
		return game.ScoreBoard{}, fmt.Errorf("%w: %d coins still in play", game.ErrInvalidState, state.Coins.Len())
	}
	return state.Scores, nil
}

type Local struct {
	State      *game.GameState
	Assignment searcher.Assignment
	Turns      []Turn
}

func LocalEngine(values []int, a searcher.Assignment) *Local {
	return &Local{
		State:      InitializeGame(values),
		Assignment: a,
	}
}

// Step plays a single turn and advances the engine's state.
func (e *Local) Step() (Turn, error) {
	turn, next, err := StepTurn(e.State, e.Assignment)
	if err != nil {
		return Turn{}, err
	}
	e.State = next
	e.Turns = append(e.Turns, turn)

	log.Debug().
		Int("turn", turn.Number).
		Stringer("player", turn.Mover).
		Stringer("move", turn.Move).
		Int("coin", turn.Coin).
		Ints("remaining", turn.Remaining).
		Int("alice", turn.Scores.Of(game.Alice)).
		Int("bob", turn.Scores.Of(game.Bob)).
		Msg("turn played")
	return turn, nil
}

// Run plays the game to the end.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	if err := e.Assignment.Validate(); err != nil {
		return metrics.GameMetric{}, nil, err
	}

	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Assignment.First(),
		Strategies:     [2]searcher.Kind{e.Assignment.Kind(game.Alice), e.Assignment.Kind(game.Bob)},
		Coins:          append([]int(nil), e.State.Coins...),
		StartTime:      start,
	}
	WarnScalingLimit(e.State.Coins.Len(), e.Assignment)

	log.Info().Msgf("%v is starting", e.Assignment.First())

	var moveMetrics []metrics.MoveMetric
	for !e.State.IsFinished() {
		turn, err := e.Step()
		if err != nil {
			return gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:            turn.Number,
			Player:          turn.Mover,
			Strategy:        e.Assignment.Kind(turn.Mover),
			Move:            turn.Move,
			Coin:            turn.Coin,
			DecisionMetrics: turn.Metrics,
		})
	}

	scores, err := FinalScores(e.State)
	if err != nil {
		return gameMetric, moveMetrics, err
	}
	if !e.State.Conserved() {
		return gameMetric, moveMetrics, errors.New("score board and remaining coins do not add up to the original row")
	}

	gameMetric.Scores = scores
	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = e.State.Turn

	log.Info().
		Int("alice", scores.Of(game.Alice)).
		Int("bob", scores.Of(game.Bob)).
		Str("winner", gameMetric.Winner).
		Msg("game over")
	return gameMetric, moveMetrics, nil
}

// WarnScalingLimit logs when a minimize-opponent assignment faces a row beyond meta.MINIMIZE_SCALING_LIMIT.
func WarnScalingLimit(coins int, a searcher.Assignment) {
	if coins > meta.MINIMIZE_SCALING_LIMIT && a.Uses(searcher.MinimizeOpponent) {
		log.Warn().Msgf("minimize-opponent lookahead over %d coins grows exponentially (limit %d)", coins, meta.MINIMIZE_SCALING_LIMIT)
	}
}
