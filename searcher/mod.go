package searcher

import (
	"fmt"
	"strings"

	"coins/game"
)

// Strategy decides which end of the row the mover takes. Decide must not mutate
// coins or scores; it returns game.NoMove for an empty row.
type Strategy interface {
	Kind() Kind
	Decide(player game.Player, coins game.Sequence, scores game.ScoreBoard, assignment Assignment) game.Move
}

// Kind enumerates the closed set of strategies.
type Kind int

const (
	Greedy Kind = iota + 1
	Optimal
	MinimizeOpponent
)

// Kinds lists every recognized strategy kind.
var Kinds = []Kind{Greedy, Optimal, MinimizeOpponent}

func (k Kind) String() string {
	switch k {
	case Greedy:
		return "greedy"
	case Optimal:
		return "optimal"
	case MinimizeOpponent:
		return "minimize"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the kind names along with the aliases used by the scenario scripts.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy", "largest", "largest-coin":
		return Greedy, nil
	case "optimal":
		return Optimal, nil
	case "minimize", "minimize-opponent", "minimize-gain":
		return MinimizeOpponent, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", game.ErrInvalidAssignment, name)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// New returns the strategy implementing kind.
func New(kind Kind) (Strategy, error) {
	switch kind {
	case Greedy:
		return greedy{}, nil
	case Optimal:
		return optimal{}, nil
	case MinimizeOpponent:
		return minimizeOpponent{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", game.ErrInvalidAssignment, kind)
	}
}
