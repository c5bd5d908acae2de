package career

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// Age bands and rating thresholds of the progression model.
const (
	growthAgeLimit       = 28 // growth phase up to and including this age
	primeAgeLimit        = 32 // prime phase up to and including this age
	potentialBlindRating = 88 // growth-phase players this good roll like prime players
	resistanceRating     = 95 // gains may be halved from here on
)

// Tier is a league-wide performance ranking that biases progression.
type Tier int

const (
	TierNone Tier = iota
	TierA
	TierS
)

func (t Tier) String() string {
	switch t {
	case TierS:
		return "S"
	case TierA:
		return "A"
	}
	return "-"
}

// PerformanceScore is 5*games plus the weighted production of the season.
func PerformanceScore(st sim.StatLine) float64 {
	return 5*float64(st.Games) + st.WeightedProduction()
}

// Tiers ranks players with at least TierMinGames games by performance score:
// the top STierSize are S-tier, the next ATierSize A-tier.
func Tiers(players []*sim.Player, cfg sim.ProgressionConfig) map[string]Tier {
	type scored struct {
		p     *sim.Player
		score float64
	}
	var ranked []scored
	for _, p := range players {
		if p.Stats.Games >= cfg.TierMinGames {
			ranked = append(ranked, scored{p, PerformanceScore(p.Stats)})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	tiers := make(map[string]Tier, cfg.STierSize+cfg.ATierSize)
	for i, r := range ranked {
		switch {
		case i < cfg.STierSize:
			tiers[r.p.ID] = TierS
		case i < cfg.STierSize+cfg.ATierSize:
			tiers[r.p.ID] = TierA
		default:
			return tiers
		}
		logrus.Debugf("progression: %s is %s-tier (score %.1f)", r.p.Name(), tiers[r.p.ID], r.score)
	}
	return tiers
}

// primeRoll is the flat prime-phase delta: 3 (20%), 2 (25%), 1 (25%), 0.
func primeRoll(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.20:
		return 3
	case r < 0.45:
		return 2
	case r < 0.70:
		return 1
	}
	return 0
}

// TargetDelta rolls the rating change p aims for this offseason.
func TargetDelta(p *sim.Player, tier Tier, cfg sim.ProgressionConfig, rng *rand.Rand) int {
	switch {
	case p.Age <= growthAgeLimit:
		var g int
		if p.Rating >= potentialBlindRating {
			g = primeRoll(rng)
		} else {
			switch pot := p.Potential; {
			case pot >= 100:
				g = sim.RandInt(rng, 5, 7)
			case pot >= 90:
				g = sim.RandInt(rng, 3, 5)
			case pot >= 80:
				g = 3
			case pot >= 70:
				g = sim.RandInt(rng, 1, 3)
			default:
				g = sim.RandInt(rng, 0, 1)
			}
			if p.Potential >= 80 && rng.Float64() < cfg.DoubleGrowthChance {
				logrus.Debugf("progression: %s double growth (%d -> %d)", p.Name(), g, g*2)
				g *= 2
			}
		}
		switch tier {
		case TierS:
			g = max(g+1, 3)
		case TierA:
			g++
		}
		return g

	case p.Age <= primeAgeLimit:
		g := primeRoll(rng)
		if tier == TierS && g == 0 {
			g = 1
		}
		return g

	default:
		g := 0
		if rng.Float64() < float64(p.Age-primeAgeLimit)*0.10 {
			g = sim.RandInt(rng, -3, -1)
		}
		switch tier {
		case TierS:
			// rejuvenation
			g = 0
			if rng.Float64() < 0.5 {
				g = 1
			}
		case TierA:
			g = max(g, 0)
		}
		return g
	}
}

// Resist applies elite resistance and the hard rating cap to a gain. Declines
// pass through unchanged.
func Resist(rating, gain int, cfg sim.ProgressionConfig, rng *rand.Rand) int {
	if gain <= 0 {
		return gain
	}
	if rating >= resistanceRating && rng.Float64() < 0.5 {
		gain /= 2
	}
	return max(0, min(gain, cfg.AttributeCap-rating))
}

var (
	offensePool = []sim.Attr{sim.AttrInside, sim.AttrOutside, sim.AttrPassing, sim.AttrConsistency}
	defensePool = []sim.Attr{sim.AttrDefense, sim.AttrSteal, sim.AttrBlock, sim.AttrRebound}
)

// AttrChange is the accumulated change of one attribute.
type AttrChange struct {
	Attr  sim.Attr
	Delta int
}

// ApplyDelta moves p's rating toward rating+target one attribute step at a
// time, alternating between the offense and defense pools from a random
// side. Growth steps are +1, or a breakthrough for attributes strictly
// between 50 and 70, capped at AttributeCap. Decline steps are 1-3 points
// floored at AttributeFloor. Guards skip block growth most of the time. The
// loop stops at the target or after MaxApplyAttempts steps.
func ApplyDelta(p *sim.Player, target int, cfg sim.ProgressionConfig, rng *rand.Rand) []AttrChange {
	if target == 0 {
		return nil
	}
	start := p.Rating
	offense := rng.Intn(2) == 0
	var changes []AttrChange
	for attempt := 0; attempt < cfg.MaxApplyAttempts; attempt++ {
		if (target > 0 && p.Rating >= start+target) || (target < 0 && p.Rating <= start+target) {
			break
		}
		pool := defensePool
		if offense {
			pool = offensePool
		}
		a := pool[rng.Intn(len(pool))]
		offense = !offense

		if a == sim.AttrBlock && p.Position.IsGuard() && rng.Float64() < cfg.GuardBlockSkip {
			continue
		}

		v := p.Attributes.Get(a)
		var d int
		if target > 0 {
			if v >= cfg.AttributeCap {
				continue
			}
			step := 1
			if v > 50 && v < 70 && rng.Float64() < cfg.BreakthroughChance {
				step = cfg.BreakthroughAmount
				logrus.Debugf("progression: %s breakthrough in %s (+%d)", p.Name(), a, step)
			}
			d = p.AdjustAttribute(a, step, v, cfg.AttributeCap)
		} else {
			d = p.AdjustAttribute(a, -sim.RandInt(rng, 1, 3), min(v, cfg.AttributeFloor), v)
		}
		if d != 0 {
			changes = addChange(changes, a, d)
		}
	}
	return changes
}

func addChange(changes []AttrChange, a sim.Attr, d int) []AttrChange {
	for i := range changes {
		if changes[i].Attr == a {
			changes[i].Delta += d
			return changes
		}
	}
	return append(changes, AttrChange{Attr: a, Delta: d})
}

// Change is the progression outcome of one player.
type Change struct {
	PlayerID string
	Name     string
	TeamID   string
	Age      int
	Tier     Tier
	Target   int
	Old      int
	New      int
	Attrs    []AttrChange
}

// LogLine renders the change as "F. Last (OVR 70->72 +2): 2pt +1, def +1".
func (c Change) LogLine() string {
	parts := make([]string, len(c.Attrs))
	for i, ac := range c.Attrs {
		parts[i] = fmt.Sprintf("%s %+d", ac.Attr, ac.Delta)
	}
	return fmt.Sprintf("%s (OVR %d->%d %+d): %s", c.Name, c.Old, c.New, c.New-c.Old, strings.Join(parts, ", "))
}

// Progress rolls and applies the offseason rating change of every active
// player. Players whose attributes changed get a line in the progression log
// under their team.
func Progress(s *sim.LeagueState, cfg sim.ProgressionConfig, rng *rand.Rand) []Change {
	tiers := Tiers(s.Players, cfg)
	out := make([]Change, 0, len(s.Players))
	for _, p := range s.Players {
		tier := tiers[p.ID]
		target := Resist(p.Rating, TargetDelta(p, tier, cfg, rng), cfg, rng)
		c := Change{PlayerID: p.ID, Name: p.Name(), TeamID: p.TeamID, Age: p.Age, Tier: tier, Target: target, Old: p.Rating}
		c.Attrs = ApplyDelta(p, target, cfg, rng)
		c.New = p.Rating
		if len(c.Attrs) > 0 {
			s.ProgressionLog[p.TeamID] = append(s.ProgressionLog[p.TeamID], c.LogLine())
		}
		out = append(out, c)
	}
	return out
}
