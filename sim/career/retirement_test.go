package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func TestRetirementChance(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	tests := []struct {
		name   string
		age    int
		rating int
		want   float64
	}{
		{"too young", 35, 70, 0},
		{"first eligible year", 36, 70, 10},
		{"doubles each year", 38, 70, 40},
		{"saturates at forty", 40, 70, 160},
		{"starter keeps half", 40, 85, 80},
		{"superstar keeps a fifth", 40, 92, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.Player("P", sim.SmallForward, tt.rating)
			p.Age = tt.age
			assert.InDelta(t, tt.want, RetirementChance(p, cfg), 1e-9)
		})
	}
}

func TestRetire_FortyYearOldAlwaysRetires(t *testing.T) {
	cfg := sim.DefaultConfig()
	for seed := int64(1); seed <= 50; seed++ {
		// GIVEN a 40-year-old role player
		s := testutil.League(testutil.TeamSpec{ID: "U", Level: 70, Size: 3})
		old := s.Roster("U")[0]
		old.Age = 40

		// WHEN retirement is rolled
		out := Retire(s, cfg, testutil.RNG(seed, sim.SubsystemProgression))

		// THEN the player leaves the active pool for the archive every time
		require.Len(t, out, 1, "seed %d", seed)
		assert.Equal(t, old.ID, out[0].PlayerID)
		assert.Equal(t, "U", out[0].TeamID)
		assert.Nil(t, s.Player(old.ID))
		assert.Contains(t, s.Retired, old)
		assert.Len(t, s.Roster("U"), 2)
		assert.Equal(t, sim.FreeAgentTeamID, old.TeamID)
	}
}

func TestRetire_YoungPlayersStay(t *testing.T) {
	s := testutil.EvenLeague(4, 70)
	out := Retire(s, sim.DefaultConfig(), testutil.RNG(3, sim.SubsystemProgression))
	assert.Empty(t, out)
	assert.Len(t, s.Players, 40)
}

func TestHallOfFame(t *testing.T) {
	s := testutil.League(testutil.TeamSpec{ID: "U", Level: 70, Size: 2})
	s.SeasonYear = 2031
	legend, journeyman := s.Roster("U")[0], s.Roster("U")[1]
	legend.History = []sim.SeasonRecord{
		{Year: 2029, TeamID: "U", StatLine: sim.StatLine{Games: 40, Points: 1000, Rebounds: 300, Assists: 100}},
		{Year: 2030, TeamID: "U", StatLine: sim.StatLine{Games: 40, Points: 1000, Rebounds: 200, Assists: 200}},
	}
	journeyman.History = []sim.SeasonRecord{{Year: 2030, StatLine: sim.StatLine{Games: 30, Points: 300}}}

	// 2000 + 1.5*500 + 2*300 + 10*80
	assert.InDelta(t, 4150.0, HallOfFameScore(legend), 1e-9)

	e, ok := InductHallOfFame(s, legend, 3000)
	require.True(t, ok)
	assert.Equal(t, sim.HallOfFameEntry{
		PlayerID: legend.ID,
		Name:     legend.Name(),
		Pos:      "PG",
		Year:     2031,
		Score:    4150,
		Stats:    "2000 Pts, 500 Reb, 300 Ast",
	}, e)
	assert.Len(t, s.HallOfFame, 1)
	assert.NotEmpty(t, s.NewsFeed)

	_, ok = InductHallOfFame(s, journeyman, 3000)
	assert.False(t, ok)
	assert.Len(t, s.HallOfFame, 1)
}
