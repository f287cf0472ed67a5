package metrics

import (
	"coins/game"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games of one matchup. Margins are Alice minus Bob.
type Summary struct {
	Matchup      int
	Games        int
	AliceWins    int
	BobWins      int
	Draws        int
	MeanMargin   float64
	StdDevMargin float64
	MeanTurnTime float64 // Seconds per turn
}

// Summarize groups records by matchup, ordered by first appearance.
func Summarize(records []GameRecord) []Summary {
	var order []int
	margins := map[int][]float64{}
	turnTimes := map[int][]float64{}
	summaries := map[int]*Summary{}

	for _, r := range records {
		s, ok := summaries[r.Matchup]
		if !ok {
			s = &Summary{Matchup: r.Matchup}
			summaries[r.Matchup] = s
			order = append(order, r.Matchup)
		}
		s.Games++
		switch r.Winner {
		case "":
			s.Draws++
		case game.Alice.String():
			s.AliceWins++
		default:
			s.BobWins++
		}
		margins[r.Matchup] = append(margins[r.Matchup], float64(r.Margin()))
		if r.TotalMoves > 0 {
			turnTimes[r.Matchup] = append(turnTimes[r.Matchup], r.Duration.Seconds()/float64(r.TotalMoves))
		}
	}

	result := make([]Summary, 0, len(order))
	for _, id := range order {
		s := summaries[id]
		s.MeanMargin, s.StdDevMargin = stat.MeanStdDev(margins[id], nil)
		if len(margins[id]) < 2 {
			s.StdDevMargin = 0
		}
		if len(turnTimes[id]) > 0 {
			s.MeanTurnTime = stat.Mean(turnTimes[id], nil)
		}
		result = append(result, *s)
	}
	return result
}
