package league

import (
	"math"
	"sort"

	"github.com/hoopsim/hoopsim/sim"
)

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// ScoringReport summarizes the played games of the current schedule.
type ScoringReport struct {
	TeamPoints  Distribution // points per team per game
	Margin      Distribution // winning margin
	Games       int
	PlayoffGame int
	Overtimes   int     // games that needed overtime
	HomeWinPct  float64 // share of games won by the home side
}

// CollectScoringReport builds a ScoringReport from the played games in s.
func CollectScoringReport(s *sim.LeagueState) ScoringReport {
	var r ScoringReport
	var points, margins []float64
	homeWins := 0
	for _, g := range s.Schedule {
		if !g.Played {
			continue
		}
		r.Games++
		if g.IsPlayoff() {
			r.PlayoffGame++
		}
		points = append(points, float64(g.HomeScore), float64(g.AwayScore))
		margins = append(margins, math.Abs(float64(g.HomeScore-g.AwayScore)))
		if g.HomeScore > g.AwayScore {
			homeWins++
		}
		if g.Result != nil && g.Result.Overtimes > 0 {
			r.Overtimes++
		}
	}
	r.TeamPoints = NewDistribution(points)
	r.Margin = NewDistribution(margins)
	if r.Games > 0 {
		r.HomeWinPct = float64(homeWins) / float64(r.Games)
	}
	return r
}
