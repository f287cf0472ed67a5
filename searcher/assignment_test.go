package searcher

import (
	"testing"

	"coins/game"

	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	t.Run("missing player is rejected", func(t *testing.T) {
		_, err := Assign(game.Alice, map[game.Player]Kind{game.Alice: Optimal})
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := Assign(game.Alice, map[game.Player]Kind{game.Alice: Optimal, game.Bob: Kind(42)})
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("unknown players are rejected", func(t *testing.T) {
		_, err := Assign(game.Player(3), map[game.Player]Kind{game.Alice: Optimal, game.Bob: Greedy})
		require.ErrorIs(t, err, game.ErrInvalidAssignment)

		_, err = Assign(game.Alice, map[game.Player]Kind{game.Alice: Optimal, game.Bob: Greedy, game.Player(3): Greedy})
		require.ErrorIs(t, err, game.ErrInvalidAssignment)
	})

	t.Run("zero assignment does not validate", func(t *testing.T) {
		require.ErrorIs(t, Assignment{}.Validate(), game.ErrInvalidAssignment)
	})

	t.Run("movers alternate from the first player", func(t *testing.T) {
		a := mustAssign(t, game.Bob, Greedy, Optimal)

		require.NoError(t, a.Validate())
		require.Equal(t, game.Bob, a.First())
		require.Equal(t, game.Bob, a.Mover(0))
		require.Equal(t, game.Alice, a.Mover(1))
		require.Equal(t, game.Bob, a.Mover(2))
		require.Equal(t, Greedy, a.Kind(game.Alice))
		require.Equal(t, Optimal, a.Strategy(game.Bob).Kind())
		require.True(t, a.Uses(Optimal))
		require.False(t, a.Uses(MinimizeOpponent))
	})

	t.Run("nil collector keeps the default", func(t *testing.T) {
		a := mustAssign(t, game.Alice, Greedy, Greedy, WithMetrics(nil))
		require.NotNil(t, a.Metrics())
	})
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds {
		s, err := New(kind)
		require.NoError(t, err)
		require.Equal(t, kind, s.Kind())
	}

	_, err := New(Kind(0))
	require.ErrorIs(t, err, game.ErrInvalidAssignment)
}
