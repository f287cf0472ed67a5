package game

// ScoreBoard holds the accumulated total of each player, indexed by Player.
type ScoreBoard [2]int

func (b ScoreBoard) Of(p Player) int {
	return b[p]
}

// Credit adds coin to the player's total.
func (b *ScoreBoard) Credit(p Player, coin int) {
	b[p] += coin
}

func (b ScoreBoard) Total() int {
	return b[Alice] + b[Bob]
}

// Leader returns the player with the higher total; ok is false on a draw.
func (b ScoreBoard) Leader() (p Player, ok bool) {
	switch {
	case b[Alice] > b[Bob]:
		return Alice, true
	case b[Bob] > b[Alice]:
		return Bob, true
	default:
		return 0, false
	}
}

// Map returns the totals keyed by player.
func (b ScoreBoard) Map() map[Player]int {
	return map[Player]int{Alice: b[Alice], Bob: b[Bob]}
}
