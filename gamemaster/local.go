package gamemaster

import (
	"fmt"
	"slices"

	"coins/engine"
	"coins/game"
	"coins/searcher"

	"github.com/rs/zerolog/log"
)

type Master struct {
	coins      []int
	assignment searcher.Assignment
	state      *game.GameState
	updateCh   chan Update
	gameOver   bool
}

var _ Engine = (*Master)(nil)

func NewMaster(coins []int, a searcher.Assignment) *Master {
	return &Master{
		coins:      coins,
		assignment: a,
	}
}

// Init starts a new game. The update channel holds one update per coin, so
// publishing never blocks a caller that polls only after each turn.
func (m *Master) Init() (*game.GameState, UpdateGetter) {
	m.state = engine.InitializeGame(m.coins)
	m.updateCh = make(chan Update, len(m.coins))
	m.gameOver = m.state.IsFinished()
	if m.gameOver {
		close(m.updateCh)
	}

	updateCh := m.updateCh
	return m.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

func (m *Master) Mover() game.Player {
	turns := 0
	if m.state != nil {
		turns = m.state.Turn
	}
	return m.assignment.Mover(turns)
}

func (m *Master) GameOver() bool {
	return m.gameOver
}

func (m *Master) Advance() (engine.Turn, error) {
	if err := m.checkPlayable(); err != nil {
		return engine.Turn{}, err
	}

	turn, next, err := engine.StepTurn(m.state, m.assignment)
	if err != nil {
		return engine.Turn{}, err
	}
	m.publish(turn, next)
	return turn, nil
}

func (m *Master) Play(move game.Move) (engine.Turn, error) {
	if err := m.checkPlayable(); err != nil {
		return engine.Turn{}, err
	}
	if !slices.Contains(m.state.LegalMoves(), move) {
		return engine.Turn{}, fmt.Errorf("%w: %v", game.ErrIllegalMove, move)
	}

	mover := m.Mover()
	next, coin, err := m.state.Play(mover, move)
	if err != nil {
		return engine.Turn{}, err
	}
	turn := engine.Turn{
		Number:    next.Turn,
		Mover:     mover,
		Move:      move,
		Coin:      coin,
		Remaining: next.Coins.Copy(),
		Scores:    next.Scores,
	}
	m.publish(turn, next)
	return turn, nil
}

func (m *Master) checkPlayable() error {
	if m.state == nil {
		return fmt.Errorf("%w: game not initialized", game.ErrInvalidState)
	}
	if m.gameOver {
		return fmt.Errorf("%w: game is over - no moves allowed", game.ErrInvalidState)
	}
	return nil
}

func (m *Master) publish(turn engine.Turn, next *game.GameState) {
	m.state = next
	finished := next.IsFinished()

	m.updateCh <- Update{
		Turn:     turn,
		State:    next.Copy(),
		Hash:     next.Hash(),
		Finished: finished,
	}
	log.Debug().Int("turn", turn.Number).Stringer("player", turn.Mover).Stringer("move", turn.Move).Msg("published update")

	if finished {
		m.gameOver = true
		close(m.updateCh)
	}
}
