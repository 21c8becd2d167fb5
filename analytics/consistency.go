package analytics

import "math"

// ConsistencyScore is a 0-100 heuristic: it rewards an even split of wins
// and losses and a healthy average achieved RR.
//
//	variance    = |wins-losses| / max(wins+losses, 1) * 100
//	rrStability = min(avgRR*20, 50)
//	score       = round(100 - variance + (rrStability - 20))
func ConsistencyScore(wins, losses int, avgRR float64) int {
	decided := max(wins+losses, 1)
	variance := math.Abs(float64(wins-losses)) / float64(decided) * 100
	stability := min(avgRR*20, 50)

	score := math.Round(100 - variance + (stability - 20))
	if math.IsNaN(score) {
		return 0
	}
	return int(min(max(score, 0), 100))
}
