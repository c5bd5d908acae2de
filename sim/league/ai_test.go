package league

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func rankedRoster(n, top int) []*sim.Player {
	roster := make([]*sim.Player, n)
	for i := range roster {
		roster[i] = testutil.Player(fmt.Sprintf("P%02d", i), sim.Positions[i%len(sim.Positions)], top-2*i)
	}
	return roster
}

func TestAIStrategy_RolesFollowRatingRank(t *testing.T) {
	// GIVEN twelve players listed worst first
	roster := rankedRoster(12, 70)
	for i, j := 0, len(roster)-1; i < j; i, j = i+1, j-1 {
		roster[i], roster[j] = roster[j], roster[i]
	}

	// WHEN the AI builds its strategy
	st := AIStrategy(roster)

	// THEN roles and options follow the rating order
	assert.Equal(t, []string{"P00", "P01", "P02"}, st.ScoringOptions)
	want := map[string]sim.RotationRole{
		"P00": sim.RoleStar, "P01": sim.RoleStar,
		"P02": sim.RoleFavored, "P03": sim.RoleFavored, "P04": sim.RoleFavored,
		"P05": sim.RoleNormal, "P06": sim.RoleNormal, "P07": sim.RoleNormal,
		"P08": sim.RoleReduced, "P09": sim.RoleReduced,
		"P10": sim.RoleBenchOnly, "P11": sim.RoleBenchOnly,
	}
	assert.Equal(t, want, st.Rotation)
}

func TestAIStrategy_Tactic(t *testing.T) {
	tests := []struct {
		name    string
		inside  int
		outside int
		want    sim.Tactic
	}{
		{"shooters play outside", 70, 80, sim.TacticOutside},
		{"bigs play inside", 85, 60, sim.TacticInside},
		{"small inside edge stays balanced", 68, 60, sim.TacticBalanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := rankedRoster(8, 70)
			for _, p := range roster {
				p.Attributes.Inside = tt.inside
				p.Attributes.Outside = tt.outside
			}
			assert.Equal(t, tt.want, AIStrategy(roster).Tactic)
		})
	}
}

func TestAIStrategy_EmptyRoster(t *testing.T) {
	st := AIStrategy(nil)
	assert.Empty(t, st.ScoringOptions)
	assert.Equal(t, sim.TacticBalanced, st.Tactic)
}

func TestRefreshStrategies_SkipsUserTeam(t *testing.T) {
	s := testutil.EvenLeague(3, 60)
	user := s.Team("T01")
	user.Strategy.ScoringOptions = []string{"T01_P9"}

	RefreshStrategies(s)

	assert.Equal(t, []string{"T01_P9"}, user.Strategy.ScoringOptions)
	for _, tm := range s.AITeams() {
		require.Len(t, tm.Strategy.ScoringOptions, 3, tm.ID)
		assert.Len(t, tm.Strategy.Rotation, 10, tm.ID)
	}
}
