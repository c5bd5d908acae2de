// Package schedule builds the regular-season calendar and runs the playoff
// bracket. It operates on a *sim.LeagueState passed in by the caller and
// never simulates games itself.
package schedule

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

type matchup struct {
	home, away string
}

// RoundRobin pairs every two teams cycles times with a random home side,
// reshuffling the pair list each cycle, then packs the matchups into days
// first-fit: each game lands on the earliest day on which neither team plays.
// Games are numbered G1.. in day order.
func RoundRobin(teamIDs []string, cycles int, rng *rand.Rand) []*sim.Game {
	if len(teamIDs) < 2 {
		return []*sim.Game{}
	}
	var pairs [][2]string
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			pairs = append(pairs, [2]string{teamIDs[i], teamIDs[j]})
		}
	}

	var all []matchup
	for c := 0; c < cycles; c++ {
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		for _, p := range pairs {
			if rng.Float64() < 0.5 {
				all = append(all, matchup{home: p[0], away: p[1]})
			} else {
				all = append(all, matchup{home: p[1], away: p[0]})
			}
		}
	}

	var days [][]matchup
	var busy []map[string]bool
	for _, m := range all {
		d := 0
		for ; d < len(days); d++ {
			if !busy[d][m.home] && !busy[d][m.away] {
				break
			}
		}
		if d == len(days) {
			days = append(days, nil)
			busy = append(busy, map[string]bool{})
		}
		days[d] = append(days[d], m)
		busy[d][m.home], busy[d][m.away] = true, true
	}

	games := make([]*sim.Game, 0, len(all))
	for d, ms := range days {
		for _, m := range ms {
			games = append(games, &sim.Game{
				ID:     sim.RegularGameID(len(games) + 1),
				Day:    d + 1,
				HomeID: m.home,
				AwayID: m.away,
			})
		}
	}
	return games
}

// Generate replaces the league schedule with a fresh regular season over the
// active teams and records its length.
func Generate(s *sim.LeagueState, cycles int, rng *rand.Rand) {
	var ids []string
	for _, t := range s.ActiveTeams() {
		ids = append(ids, t.ID)
	}
	s.Schedule = RoundRobin(ids, cycles, rng)
	s.RecalcRegularSeasonDays()
	logrus.Debugf("schedule: %d games over %d days for %d teams", len(s.Schedule), s.RegularSeasonDays, len(ids))
}
