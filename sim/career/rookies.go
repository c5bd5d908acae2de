package career

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

var (
	givenNames = []string{
		"Chih-Ming", "Chih-Wei", "Chien-Kuo", "Chien-Hua", "Chun-Chieh", "Chun-Hung",
		"Chia-Hao", "Chia-Wei", "Kuan-Yu", "Kuan-Ting", "Tsung-Han", "Po-Han",
		"Yen-Ting", "Yen-Hung", "Cheng-En", "Yu-Hsuan", "Pin-Jui", "Hao-Yu",
		"Tzu-Hsuan", "Wei-Che", "Wen-Chieh", "Ming-Che", "Shih-Hao", "Chia-Jung",
	}
	familyNames = []string{
		"Wang", "Chen", "Lin", "Huang", "Chang", "Li", "Wu", "Liu", "Tsai", "Yang",
		"Hsu", "Cheng", "Hsieh", "Kuo", "Hung", "Tseng", "Chiu", "Liao", "Lai", "Chou",
		"Yeh", "Su", "Chuang", "Lu", "Chiang", "Ho", "Hsiao", "Lo", "Kao", "Pan",
	}
)

// RookieName draws a "Given Family" name.
func RookieName(rng *rand.Rand) string {
	return givenNames[rng.Intn(len(givenNames))] + " " + familyNames[rng.Intn(len(familyNames))]
}

// talentTier is one rookie talent bucket, chosen when the roll is below cutoff.
type talentTier struct {
	cutoff           float64
	potLo, potHi     int
	startLo, startHi int
}

var talentTiers = []talentTier{
	{0.05, 90, 99, 70, 80}, // generational
	{0.20, 80, 89, 65, 75}, // all-star
	{0.60, 70, 79, 55, 65}, // role player
	{1.00, 50, 69, 40, 55}, // bench
}

// ClassSize is the number of rookies generated: RookiesPerTeam per active
// team, at least RookieMinClass.
func ClassSize(s *sim.LeagueState, cfg sim.ProgressionConfig) int {
	return max(cfg.RookieMinClass, cfg.RookiesPerTeam*len(s.ActiveTeams()))
}

// GenerateRookie builds the i-th (0-based) prospect of a draft year. The
// player is not attached to any team.
func GenerateRookie(year, i int, salary float64, rng *rand.Rand) *sim.Player {
	age := sim.RandInt(rng, 18, 22)
	pos := sim.Positions[rng.Intn(len(sim.Positions))]

	roll := rng.Float64()
	tier := talentTiers[len(talentTiers)-1]
	for _, t := range talentTiers {
		if roll < t.cutoff {
			tier = t
			break
		}
	}
	pot := sim.RandInt(rng, tier.potLo, tier.potHi)
	start := sim.RandInt(rng, tier.startLo, tier.startHi)
	around := func(spread int) int { return max(30, start+sim.RandInt(rng, -spread, spread)) }

	attrs := sim.Attributes{
		Inside:      around(10),
		Outside:     around(15),
		Rebound:     around(10),
		Passing:     around(10),
		Consistency: sim.RandInt(rng, 40, 80),
		Block:       around(15),
		Steal:       around(10),
		Defense:     around(5),
	}
	p := sim.NewPlayer(fmt.Sprintf("R%d%03d", year, i+1), RookieName(rng), pos, age, attrs)
	p.Potential = pot
	p.Salary = salary
	p.ContractYears = 1
	p.Scouted = true
	return p
}

// GenerateClass replaces the draft class with a fresh one for the current
// season year, every prospect on the draft pseudo-team.
func GenerateClass(s *sim.LeagueState, cfg *sim.Config, rng *rand.Rand) []*sim.Player {
	n := ClassSize(s, cfg.Progression)
	s.DraftClass = make([]*sim.Player, 0, n)
	for i := 0; i < n; i++ {
		p := GenerateRookie(s.SeasonYear, i, cfg.Economy.MinSalary, rng)
		s.DraftClass = append(s.DraftClass, p)
		s.MovePlayer(p, sim.DraftTeamID)
	}
	logrus.Debugf("draft: generated %d rookies for %d", n, s.SeasonYear)
	return s.DraftClass
}
