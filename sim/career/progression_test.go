package career

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func TestTiers(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	var players []*sim.Player
	for i := 0; i < 20; i++ {
		p := testutil.Player(fmt.Sprintf("P%02d", i), sim.SmallForward, 60)
		p.Stats = sim.StatLine{Games: 20, Points: 1000 - i*10}
		players = append(players, p)
	}
	benchwarmer := testutil.Player("BENCH", sim.Center, 60)
	benchwarmer.Stats = sim.StatLine{Games: 5, Points: 5000}
	players = append(players, benchwarmer)

	tiers := Tiers(players, cfg)

	for i := 0; i < 5; i++ {
		assert.Equal(t, TierS, tiers[fmt.Sprintf("P%02d", i)], "rank %d", i+1)
	}
	for i := 5; i < 15; i++ {
		assert.Equal(t, TierA, tiers[fmt.Sprintf("P%02d", i)], "rank %d", i+1)
	}
	for i := 15; i < 20; i++ {
		assert.Equal(t, TierNone, tiers[fmt.Sprintf("P%02d", i)], "rank %d", i+1)
	}
	assert.Equal(t, TierNone, tiers["BENCH"], "fewer than 10 games is unranked")
}

func TestPerformanceScore(t *testing.T) {
	st := sim.StatLine{Games: 10, Points: 100, Assists: 10, Rebounds: 10, Steals: 5, Blocks: 5, Turnovers: 10}
	// 50 + 100 + 15 + 12 + 10 + 10 - 15
	assert.InDelta(t, 182.0, PerformanceScore(st), 1e-9)
}

func TestTargetDelta_Bands(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	tests := []struct {
		name      string
		age       int
		rating    int
		potential int
		tier      Tier
		allowed   []int
	}{
		{"growth high potential", 22, 70, 85, TierNone, []int{3, 6}},
		{"growth modest potential", 22, 60, 75, TierNone, []int{1, 2, 3}},
		{"growth low potential", 22, 50, 60, TierNone, []int{0, 1}},
		{"growth low potential S-tier", 22, 50, 60, TierS, []int{3}},
		{"growth A-tier", 22, 50, 60, TierA, []int{1, 2}},
		{"growth already elite rolls like prime", 24, 90, 99, TierNone, []int{0, 1, 2, 3}},
		{"prime", 30, 75, 75, TierNone, []int{0, 1, 2, 3}},
		{"prime S-tier never stalls", 30, 75, 75, TierS, []int{1, 2, 3}},
		{"deep decline", 45, 75, 75, TierNone, []int{-3, -2, -1}},
		{"decline A-tier frozen", 45, 75, 75, TierA, []int{0}},
		{"decline S-tier rejuvenates", 45, 75, 75, TierS, []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.RNG(11, sim.SubsystemProgression)
			p := testutil.Player("P", sim.SmallForward, tt.rating)
			p.Age, p.Potential = tt.age, tt.potential
			for i := 0; i < 200; i++ {
				assert.Contains(t, tt.allowed, TargetDelta(p, tt.tier, cfg, rng))
			}
		})
	}
}

func TestResist(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	tests := []struct {
		name   string
		rating int
		gain   int
		want   int
	}{
		{"capped rating never grows", 99, 3, 0},
		{"below resistance untouched", 90, 5, 5},
		{"clamped to the cap", 97, 5, 2},
		{"declines pass through", 60, -2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resist(tt.rating, tt.gain, cfg, testutil.RNG(5, sim.SubsystemProgression)))
		})
	}
}

func TestApplyDelta_GrowthReachesTarget(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	for seed := int64(1); seed <= 20; seed++ {
		p := testutil.Player("P", sim.SmallForward, 60)
		start := p.Rating

		changes := ApplyDelta(p, 3, cfg, testutil.RNG(seed, sim.SubsystemProgression))

		assert.GreaterOrEqual(t, p.Rating, start+3, "seed %d", seed)
		assert.Equal(t, p.Attributes.Rating(), p.Rating, "rating follows attributes")
		require.NotEmpty(t, changes)
		for _, c := range changes {
			assert.Positive(t, c.Delta)
			assert.LessOrEqual(t, p.Attributes.Get(c.Attr), cfg.AttributeCap)
		}
	}
}

func TestApplyDelta_DeclineIsFloored(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	p := testutil.Player("P", sim.Center, 27)

	changes := ApplyDelta(p, -10, cfg, testutil.RNG(2, sim.SubsystemProgression))

	require.NotEmpty(t, changes)
	for _, c := range changes {
		assert.Negative(t, c.Delta)
	}
	for a := sim.AttrInside; a <= sim.AttrDefense; a++ {
		assert.GreaterOrEqual(t, p.Attributes.Get(a), cfg.AttributeFloor, a.String())
	}
}

func TestApplyDelta_GuardsRarelyGrowBlocks(t *testing.T) {
	cfg := sim.DefaultProgressionConfig()
	cfg.BreakthroughChance = 0
	rng := testutil.RNG(8, sim.SubsystemProgression)
	blocks, steals := 0, 0
	for i := 0; i < 200; i++ {
		p := testutil.Player("G", sim.PointGuard, 40)
		for _, c := range ApplyDelta(p, 5, cfg, rng) {
			switch c.Attr {
			case sim.AttrBlock:
				blocks += c.Delta
			case sim.AttrSteal:
				steals += c.Delta
			}
		}
	}
	require.Positive(t, steals)
	assert.Less(t, blocks*3, steals)
}

func TestProgress_LogsUnderTeam(t *testing.T) {
	// GIVEN 25-year-olds whose potential equals a 70 rating (growth 1-3)
	s := testutil.League(testutil.TeamSpec{ID: "U", Level: 70, Size: 5})

	changes := Progress(s, sim.DefaultProgressionConfig(), testutil.RNG(4, sim.SubsystemProgression))

	require.Len(t, changes, 5)
	for _, c := range changes {
		assert.Positive(t, c.Target)
		assert.Greater(t, c.New, c.Old)
	}
	lines := s.ProgressionLog["U"]
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "(OVR 70->")
}

func TestChange_LogLine(t *testing.T) {
	c := Change{Name: "C. Wang", Old: 70, New: 72, Attrs: []AttrChange{{sim.AttrInside, 1}, {sim.AttrDefense, 2}}}
	assert.Equal(t, "C. Wang (OVR 70->72 +2): 2pt +1, def +2", c.LogLine())

	c = Change{Name: "C. Wang", Old: 70, New: 69, Attrs: []AttrChange{{sim.AttrSteal, -3}}}
	assert.Equal(t, "C. Wang (OVR 70->69 -1): steal -3", c.LogLine())
}
