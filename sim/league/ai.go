package league

import (
	"sort"

	"github.com/hoopsim/hoopsim/sim"
)

// rotationTiers assigns roles by rating rank: the top two are stars, the
// next three favored, the next three normal, the next two reduced and
// everyone after that is bench-only.
var rotationTiers = []struct {
	size int
	role sim.RotationRole
}{
	{2, sim.RoleStar},
	{3, sim.RoleFavored},
	{3, sim.RoleNormal},
	{2, sim.RoleReduced},
}

const (
	scoringOptions = 3
	tacticCore     = 8
	outsideAverage = 75.0
	insideMargin   = 10.0
)

// AIStrategy derives the coaching setup of an AI team from its roster.
func AIStrategy(roster []*sim.Player) sim.Strategy {
	ranked := append([]*sim.Player(nil), roster...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })

	st := sim.DefaultStrategy()
	for i := 0; i < min(scoringOptions, len(ranked)); i++ {
		st.ScoringOptions = append(st.ScoringOptions, ranked[i].ID)
	}

	i := 0
	for _, tier := range rotationTiers {
		for n := 0; n < tier.size && i < len(ranked); n++ {
			st.Rotation[ranked[i].ID] = tier.role
			i++
		}
	}
	for ; i < len(ranked); i++ {
		st.Rotation[ranked[i].ID] = sim.RoleBenchOnly
	}

	core := ranked[:min(tacticCore, len(ranked))]
	if len(core) == 0 {
		return st
	}
	var in, out float64
	for _, p := range core {
		in += float64(p.Attributes.Inside)
		out += float64(p.Attributes.Outside)
	}
	in /= float64(len(core))
	out /= float64(len(core))
	switch {
	case out >= outsideAverage:
		st.Tactic = sim.TacticOutside
	case in > out+insideMargin:
		st.Tactic = sim.TacticInside
	}
	return st
}

// RefreshStrategies recomputes the strategy of every AI team.
func RefreshStrategies(s *sim.LeagueState) {
	for _, t := range s.AITeams() {
		t.Strategy = AIStrategy(s.Roster(t.ID))
	}
}
