package career

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
)

// Retirement records a player leaving the league.
type Retirement struct {
	PlayerID   string
	Name       string
	TeamID     string // team at the time of retirement
	Age        int
	HallOfFame *sim.HallOfFameEntry
}

// RetirementChance is the percent chance that p retires this offseason:
// 10*2^(age-RetirementAge) from RetirementAge on, cut by 80% for ratings of
// 90 and up and by 50% for ratings of 80 and up. Values above 100 are certain.
func RetirementChance(p *sim.Player, cfg sim.ProgressionConfig) float64 {
	if p.Age < cfg.RetirementAge {
		return 0
	}
	chance := 10 * math.Pow(2, float64(p.Age-cfg.RetirementAge))
	switch {
	case p.Rating >= 90:
		chance *= 0.2
	case p.Rating >= 80:
		chance *= 0.5
	}
	return chance
}

// Retire rolls retirement once per active player. Retirees get a Hall of
// Fame check, are released and then leave the active pool for the archive.
func Retire(s *sim.LeagueState, cfg *sim.Config, rng *rand.Rand) []Retirement {
	var retiring []*sim.Player
	for _, p := range s.Players {
		chance := RetirementChance(p, cfg.Progression)
		if chance > 0 && float64(sim.RandInt(rng, 1, 100)) <= chance {
			retiring = append(retiring, p)
		}
	}
	out := make([]Retirement, 0, len(retiring))
	for _, p := range retiring {
		r := Retirement{PlayerID: p.ID, Name: p.Name(), TeamID: p.TeamID, Age: p.Age}
		if e, ok := InductHallOfFame(s, p, cfg.Progression.HallOfFameThreshold); ok {
			r.HallOfFame = &e
		}
		economy.Release(s, p, cfg.Economy)
		s.RetirePlayer(p)
		logrus.Debugf("retired: %s at %d (OVR %d)", p.Name(), p.Age, p.Rating)
		out = append(out, r)
	}
	return out
}

// HallOfFameScore weighs a career: pts + 1.5*reb + 2*ast + 10*games.
func HallOfFameScore(p *sim.Player) float64 {
	c := p.CareerTotals()
	return float64(c.Points) + 1.5*float64(c.Rebounds) + 2*float64(c.Assists) + 10*float64(c.Games)
}

// InductHallOfFame adds p to the Hall of Fame when its career score exceeds
// threshold.
func InductHallOfFame(s *sim.LeagueState, p *sim.Player, threshold float64) (sim.HallOfFameEntry, bool) {
	score := HallOfFameScore(p)
	if score <= threshold {
		return sim.HallOfFameEntry{}, false
	}
	c := p.CareerTotals()
	e := sim.HallOfFameEntry{
		PlayerID: p.ID,
		Name:     p.Name(),
		Pos:      string(p.Position),
		Year:     s.SeasonYear,
		Score:    int(score),
		Stats:    fmt.Sprintf("%d Pts, %d Reb, %d Ast", c.Points, c.Rebounds, c.Assists),
	}
	s.HallOfFame = append(s.HallOfFame, e)
	s.AddNews(fmt.Sprintf("HALL OF FAME: %s has been inducted (%s).", e.Name, e.Stats))
	logrus.Infof("hall of fame: %s (score %d)", e.Name, e.Score)
	return e, true
}
