package league

import (
	"github.com/hoopsim/hoopsim/sim"
)

// Exhibition plays a game between two teams without touching standings,
// stats or records.
func (e *Engine) Exhibition(homeID, awayID string) (*sim.GameResult, Result) {
	s := e.state
	home, away := s.Team(homeID), s.Team(awayID)
	switch {
	case home == nil || homeID == sim.FreeAgentTeamID:
		return nil, fail("Unknown team %s.", homeID)
	case away == nil || awayID == sim.FreeAgentTeamID:
		return nil, fail("Unknown team %s.", awayID)
	case homeID == awayID:
		return nil, fail("A team cannot play itself.")
	}
	for _, id := range []string{homeID, awayID} {
		if r := e.checkRoster(id); !r.OK {
			return nil, r
		}
	}
	hs, as := *home, *away
	if homeID != s.UserTeamID {
		hs.Strategy = AIStrategy(s.Roster(homeID))
	}
	if awayID != s.UserTeamID {
		as.Strategy = AIStrategy(s.Roster(awayID))
	}
	res, err := sim.SimulateGame(
		sim.Side{Team: &hs, Roster: s.Roster(homeID)},
		sim.Side{Team: &as, Roster: s.Roster(awayID)},
		&e.cfg.Match, e.rng(sim.SubsystemMatch))
	if err != nil {
		return nil, fail("%v", err)
	}
	return res, ok("%s %d, %s %d", home.Name, res.HomeScore, away.Name, res.AwayScore)
}
