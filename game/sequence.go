package game

// Sequence is the ordered row of remaining coin values.
//
// Pops only reslice and never write the backing array. A Sequence passed by value
// can be popped without affecting the caller, but it still shares elements with
// it: writing through an index changes both. Use Copy before handing a row out.
type Sequence []int

// NewSequence copies values into a fresh row.
func NewSequence(values []int) Sequence {
	s := make(Sequence, len(values))
	copy(s, values)
	return s
}

func (s Sequence) Len() int {
	return len(s)
}

func (s Sequence) IsEmpty() bool {
	return len(s) == 0
}

// Left returns the front coin. Panics on an empty row.
func (s Sequence) Left() int {
	return s[0]
}

// Right returns the back coin. Panics on an empty row.
func (s Sequence) Right() int {
	return s[len(s)-1]
}

// PopFront removes and returns the front coin.
func (s *Sequence) PopFront() int {
	coin := (*s)[0]
	*s = (*s)[1:]
	return coin
}

// PopBack removes and returns the back coin.
func (s *Sequence) PopBack() int {
	last := len(*s) - 1
	coin := (*s)[last]
	*s = (*s)[:last]
	return coin
}

// Take removes the coin at the end chosen by move.
func (s *Sequence) Take(move Move) int {
	if move == TakeRight {
		return s.PopBack()
	}
	return s.PopFront()
}

// Range is the inclusive view [i..j] into the row without copying.
func (s Sequence) Range(i, j int) Sequence {
	if i > j {
		return Sequence{}
	}
	return s[i : j+1]
}

func (s Sequence) Sum() int {
	total := 0
	for _, coin := range s {
		total += coin
	}
	return total
}

// Copy returns a row with its own backing array.
func (s Sequence) Copy() Sequence {
	return NewSequence(s)
}
