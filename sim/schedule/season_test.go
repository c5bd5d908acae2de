package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("T%02d", i+1)
	}
	return ids
}

func TestRoundRobin_EveryPairPlaysCyclesTimes(t *testing.T) {
	// GIVEN 6 teams and 6 cycles
	ids := teamIDs(6)
	games := RoundRobin(ids, 6, testutil.RNG(1, sim.SubsystemSchedule))

	// THEN every unordered pair meets exactly 6 times
	require.Len(t, games, 15*6)
	meetings := map[string]int{}
	for _, g := range games {
		a, b := g.HomeID, g.AwayID
		if a > b {
			a, b = b, a
		}
		meetings[a+"-"+b]++
	}
	assert.Len(t, meetings, 15)
	for pair, n := range meetings {
		assert.Equal(t, 6, n, pair)
	}
}

func TestRoundRobin_NoTeamPlaysTwiceInADay(t *testing.T) {
	games := RoundRobin(teamIDs(8), 6, testutil.RNG(2, sim.SubsystemSchedule))

	busy := map[int]map[string]bool{}
	for _, g := range games {
		if busy[g.Day] == nil {
			busy[g.Day] = map[string]bool{}
		}
		assert.False(t, busy[g.Day][g.HomeID], "%s twice on day %d", g.HomeID, g.Day)
		assert.False(t, busy[g.Day][g.AwayID], "%s twice on day %d", g.AwayID, g.Day)
		busy[g.Day][g.HomeID], busy[g.Day][g.AwayID] = true, true
	}
}

func TestRoundRobin_IDsFollowDayOrder(t *testing.T) {
	games := RoundRobin(teamIDs(4), 2, testutil.RNG(3, sim.SubsystemSchedule))

	prev := 0
	for i, g := range games {
		assert.Equal(t, sim.RegularGameID(i+1), g.ID)
		assert.GreaterOrEqual(t, g.Day, prev)
		assert.False(t, g.IsPlayoff())
		prev = g.Day
	}
}

func TestRoundRobin_HomeAwayIsRandomized(t *testing.T) {
	games := RoundRobin([]string{"A", "B"}, 200, testutil.RNG(4, sim.SubsystemSchedule))

	home := 0
	for _, g := range games {
		if g.HomeID == "A" {
			home++
		}
	}
	assert.InDelta(t, 100, home, 30)
}

func TestRoundRobin_Deterministic(t *testing.T) {
	a := RoundRobin(teamIDs(5), 3, testutil.RNG(9, sim.SubsystemSchedule))
	b := RoundRobin(teamIDs(5), 3, testutil.RNG(9, sim.SubsystemSchedule))
	assert.Equal(t, a, b)
}

func TestRoundRobin_TooFewTeams(t *testing.T) {
	assert.Empty(t, RoundRobin([]string{"A"}, 6, testutil.RNG(1, sim.SubsystemSchedule)))
	assert.Empty(t, RoundRobin(nil, 6, testutil.RNG(1, sim.SubsystemSchedule)))
}

func TestGenerate_SkipsFreeAgentsAndSetsSeasonLength(t *testing.T) {
	// GIVEN a league of 4 teams plus the free-agent team
	s := testutil.EvenLeague(4, 70)

	// WHEN the season is generated
	Generate(s, 6, testutil.RNG(5, sim.SubsystemSchedule))

	// THEN the free-agent team never plays and the length is the last day used
	last := 0
	for _, g := range s.Schedule {
		assert.False(t, g.Involves(sim.FreeAgentTeamID))
		last = max(last, g.Day)
	}
	assert.Len(t, s.Schedule, 6*6)
	assert.Equal(t, last, s.RegularSeasonDays)
	assert.Equal(t, sim.PhaseRegularSeason, s.Phase())
}
