// Package testutil provides shared test infrastructure for the hoopsim
// sub-packages: league fixtures built from uniform rosters and float
// assertion helpers. Tests of package sim itself keep local helpers to
// avoid an import cycle.
package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/hoopsim/hoopsim/sim"
)

// UniformAttributes returns attributes with every skill set to v.
func UniformAttributes(v int) sim.Attributes {
	return sim.Attributes{Inside: v, Outside: v, Rebound: v, Passing: v, Consistency: v, Block: v, Steal: v, Defense: v}
}

// Player builds a 25-year-old player whose attributes all equal level.
func Player(id string, pos sim.Position, level int) *sim.Player {
	p := sim.NewPlayer(id, "Test "+id, pos, 25, UniformAttributes(level))
	p.Potential = p.Rating
	p.Salary = 1
	return p
}

// TeamSpec describes one team of a fixture league.
type TeamSpec struct {
	ID    string
	Level int // attribute level of every player
	Size  int // roster size; 0 means 10
}

// League builds a league with the given teams, each roster cycling through the
// five positions. Player IDs are "{team}_P{i}". The first team is the user team.
func League(specs ...TeamSpec) *sim.LeagueState {
	s := sim.NewLeagueState(2025, "2025-10-01", 70)
	for i, spec := range specs {
		t := sim.NewTeam(spec.ID, "Team "+spec.ID)
		s.Teams = append(s.Teams, t)
		if i == 0 {
			s.UserTeamID = spec.ID
		}
		n := spec.Size
		if n == 0 {
			n = 10
		}
		for j := 0; j < n; j++ {
			p := Player(fmt.Sprintf("%s_P%d", spec.ID, j), sim.Positions[j%len(sim.Positions)], spec.Level)
			s.MovePlayer(p, spec.ID)
		}
	}
	return s
}

// EvenLeague builds n teams T01..Tnn at the same level.
func EvenLeague(n, level int) *sim.LeagueState {
	specs := make([]TeamSpec, n)
	for i := range specs {
		specs[i] = TeamSpec{ID: fmt.Sprintf("T%02d", i+1), Level: level}
	}
	return League(specs...)
}

// RNG returns a seeded source for the named subsystem.
func RNG(seed int64, subsystem string) *rand.Rand {
	return sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(subsystem)
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
