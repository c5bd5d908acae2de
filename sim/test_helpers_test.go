package sim

import (
	"fmt"
	"math/rand"
)

// uniformAttrs returns attributes with every skill set to v.
func uniformAttrs(v int) Attributes {
	return Attributes{Inside: v, Outside: v, Rebound: v, Passing: v, Consistency: v, Block: v, Steal: v, Defense: v}
}

// testPlayer builds a player whose attributes all equal level.
func testPlayer(id string, pos Position, level int) *Player {
	return NewPlayer(id, "Test "+id, pos, 25, uniformAttrs(level))
}

// testSide builds a team of n players cycling through the five positions.
func testSide(teamID string, level, n int) Side {
	t := NewTeam(teamID, "Team "+teamID)
	roster := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		p := testPlayer(fmt.Sprintf("%s_P%d", teamID, i), Positions[i%len(Positions)], level)
		p.TeamID = teamID
		roster = append(roster, p)
	}
	return Side{Team: t, Roster: roster}
}

// testLeague builds a league of the given sides with every player in the pool.
func testLeague(sides ...Side) *LeagueState {
	s := NewLeagueState(2025, "2025-10-01", 70)
	for _, side := range sides {
		s.Teams = append(s.Teams, side.Team)
		s.Players = append(s.Players, side.Roster...)
	}
	return s
}

func newTestRNG(seed int64) *rand.Rand {
	return NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemMatch)
}
