package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("new sequence copies its input", func(t *testing.T) {
		values := []int{1, 2, 3}
		s := NewSequence(values)
		values[0] = 9

		require.Equal(t, Sequence{1, 2, 3}, s)
	})

	t.Run("pops shrink the row from both ends", func(t *testing.T) {
		s := NewSequence([]int{4, 5, 6})

		require.Equal(t, 4, s.PopFront())
		require.Equal(t, 6, s.PopBack())
		require.Equal(t, Sequence{5}, s)
		require.Equal(t, 5, s.Left())
		require.Equal(t, 5, s.Right())
	})

	t.Run("popping a value copy leaves the original intact", func(t *testing.T) {
		original := NewSequence([]int{1, 2, 3, 4})
		view := original
		view.PopFront()
		view.PopBack()

		require.Equal(t, Sequence{1, 2, 3, 4}, original)
		require.Equal(t, Sequence{2, 3}, view)
	})

	t.Run("take follows the move", func(t *testing.T) {
		s := NewSequence([]int{7, 8, 9})

		require.Equal(t, 9, s.Take(TakeRight))
		require.Equal(t, 7, s.Take(TakeLeft))
		require.Equal(t, 1, s.Len())
	})

	t.Run("range is inclusive and empty when reversed", func(t *testing.T) {
		s := NewSequence([]int{1, 2, 3, 4})

		require.Equal(t, Sequence{2, 3}, s.Range(1, 2))
		require.Equal(t, Sequence{4}, s.Range(3, 3))
		require.True(t, s.Range(2, 1).IsEmpty())
	})

	t.Run("sum of an empty row is zero", func(t *testing.T) {
		require.Equal(t, 0, Sequence{}.Sum())
		require.Equal(t, 10, NewSequence([]int{1, 2, 3, 4}).Sum())
	})
}

func TestScoreBoard(t *testing.T) {
	var b ScoreBoard
	b.Credit(Alice, 5)
	b.Credit(Bob, 3)
	b.Credit(Alice, 1)

	require.Equal(t, 6, b.Of(Alice))
	require.Equal(t, 3, b.Of(Bob))
	require.Equal(t, 9, b.Total())
	require.Equal(t, map[Player]int{Alice: 6, Bob: 3}, b.Map())

	leader, ok := b.Leader()
	require.True(t, ok)
	require.Equal(t, Alice, leader)

	_, ok = ScoreBoard{4, 4}.Leader()
	require.False(t, ok)
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer(" bob ")
	require.NoError(t, err)
	require.Equal(t, Bob, p)
	require.Equal(t, Alice, p.Opponent())

	_, err = ParsePlayer("carol")
	require.ErrorIs(t, err, ErrInvalidAssignment)
}
