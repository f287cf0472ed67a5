package game

import (
	"fmt"
	"strings"
)

// Player is one of the two identities taking turns.
type Player int

const (
	Alice Player = iota
	Bob
)

// Players lists both identities in seat order.
var Players = [2]Player{Alice, Bob}

func (p Player) String() string {
	switch p {
	case Alice:
		return "Alice"
	case Bob:
		return "Bob"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Opponent returns the other identity.
func (p Player) Opponent() Player {
	if p == Alice {
		return Bob
	}
	return Alice
}

func (p Player) Valid() bool {
	return p == Alice || p == Bob
}

// ParsePlayer matches a player name, ignoring case and surrounding space.
func ParsePlayer(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alice":
		return Alice, nil
	case "bob":
		return Bob, nil
	default:
		return 0, fmt.Errorf("%w: unknown player %q", ErrInvalidAssignment, name)
	}
}

// Move picks which end of the row the mover takes.
type Move int

const (
	NoMove Move = iota // Returned for an empty row
	TakeLeft
	TakeRight
)

func (m Move) String() string {
	switch m {
	case TakeLeft:
		return "left"
	case TakeRight:
		return "right"
	default:
		return "none"
	}
}

type StateHash uint64
