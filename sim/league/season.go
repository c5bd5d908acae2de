package league

import (
	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// maxSeasonDays bounds PlaySeason so a league that cannot finish its
// playoffs fails instead of spinning.
const maxSeasonDays = 2000

// SeasonOutcome summarizes one season played to completion.
type SeasonOutcome struct {
	Year   int
	Days   int
	Games  int
	Awards *sim.SeasonAwards
}

// PlaySeason advances day by day until a champion is crowned.
func (e *Engine) PlaySeason() (SeasonOutcome, Result) {
	out := SeasonOutcome{Year: e.state.SeasonYear}
	for i := 0; i < maxSeasonDays; i++ {
		switch e.state.Phase() {
		case sim.PhaseSeasonComplete:
			if out.Awards == nil && len(e.state.LeagueHistory) > 0 {
				last := e.state.LeagueHistory[len(e.state.LeagueHistory)-1]
				out.Awards = &last
			}
			return out, ok("The %d season is complete.", out.Year)
		case sim.PhaseOffseason, sim.PhaseDraft:
			return out, fail("No season in progress (%s).", e.state.Phase())
		}
		res, rep := e.PlayDayReport()
		if !res.OK {
			return out, res
		}
		out.Days++
		out.Games += len(rep.Games)
		if rep.Awards != nil {
			out.Awards = rep.Awards
		}
	}
	return out, fail("season %d did not finish within %d days", out.Year, maxSeasonDays)
}

// Offseason drives the league from a crowned champion to the next regular
// season: the season transition, the whole draft with every pick automated
// and the post-draft free agency. The sequence is one transaction; if any
// step fails the league is left as it was before the transition.
func (e *Engine) Offseason() Result {
	return e.transact("offseason", func() Result {
		if res, _ := e.startNewSeason(); !res.OK {
			return res
		}
		if res := e.initDraft(); !res.OK {
			panic(rollback(res))
		}
		if res := e.simDraft(true); !res.OK {
			panic(rollback(res))
		}
		if ph := e.state.Phase(); ph != sim.PhaseRegularSeason {
			panic(rollback(fail("offseason ended in %s", ph)))
		}
		logrus.Infof("season %d ready: %d games over %d days", e.state.SeasonYear, len(e.state.Schedule), e.state.RegularSeasonDays)
		return ok("Season %d scheduled.", e.state.SeasonYear)
	})
}
