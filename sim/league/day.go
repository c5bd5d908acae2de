package league

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/career"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/schedule"
	"github.com/hoopsim/hoopsim/sim/trace"
)

// DayReport lists what happened on one simulated day.
type DayReport struct {
	Day      int
	Games    []*sim.GameResult
	Records  []string
	Signings []economy.Signing
	Trade    *economy.AITrade
	Awards   *sim.SeasonAwards
}

// PlayDay advances the league one day. During the season it plays the day's
// games, feeds the playoff bracket, runs AI free agency and trades and moves
// the calendar. In the offseason it runs AI free agency only. It refuses once
// the champion is crowned, while the draft is active and when a team playing
// today is below its roster minimum.
func (e *Engine) PlayDay() Result {
	r, _ := e.PlayDayReport()
	return r
}

// PlayDayReport is PlayDay returning the day's details as well.
func (e *Engine) PlayDayReport() (Result, *DayReport) {
	var rep *DayReport
	res := e.transact("play-day", func() Result {
		switch e.state.Phase() {
		case sim.PhaseSeasonComplete:
			return fail("The season is over. Start a new season.")
		case sim.PhaseDraft:
			return fail("The draft is in progress.")
		case sim.PhaseOffseason:
			rep = e.offseasonDay()
			return ok("Offseason day: %d free-agent signings.", len(rep.Signings))
		}
		for _, g := range e.state.GamesOn(e.state.CurrentDay) {
			if g.Played {
				continue
			}
			for _, id := range []string{g.HomeID, g.AwayID} {
				if r := e.checkRoster(id); !r.OK {
					return r
				}
			}
		}
		rep = e.seasonDay()
		return ok("Day %d: %d games played.", rep.Day, len(rep.Games))
	})
	return res, rep
}

// minRoster is the fewest players teamID must carry to play a game.
func (e *Engine) minRoster(teamID string) int {
	if teamID != "" && teamID == e.state.UserTeamID {
		return max(e.cfg.Season.UserMinRoster, e.cfg.Season.MinRoster)
	}
	return e.cfg.Season.MinRoster
}

// checkRoster refuses a game for a team below its roster minimum.
func (e *Engine) checkRoster(teamID string) Result {
	n, need := len(e.state.Roster(teamID)), e.minRoster(teamID)
	if n < need {
		return fail("%s cannot field a team: %d players on the roster, %d needed.", e.state.TeamName(teamID), n, need)
	}
	return ok("")
}

func (e *Engine) offseasonDay() *DayReport {
	s := e.state
	rep := &DayReport{Day: s.CurrentDay}
	rep.Signings = economy.OffseasonFreeAgency(s, e.cfg.Economy, e.rng(sim.SubsystemEconomy))
	e.recordSignings(rep.Signings, "offseason")
	e.advanceDate()
	e.metrics.recordDay()
	return rep
}

func (e *Engine) seasonDay() *DayReport {
	s := e.state
	rep := &DayReport{Day: s.CurrentDay}
	RefreshStrategies(s)

	match := e.rng(sim.SubsystemMatch)
	for _, g := range s.GamesOn(s.CurrentDay) {
		if g.Played {
			continue
		}
		home, away := s.Team(g.HomeID), s.Team(g.AwayID)
		if home == nil || away == nil {
			logrus.Warnf("day %d: skipping %s with unknown team", s.CurrentDay, g.ID)
			continue
		}
		res, err := sim.SimulateGame(
			sim.Side{Team: home, Roster: s.Roster(home.ID)},
			sim.Side{Team: away, Roster: s.Roster(away.ID)},
			&e.cfg.Match, match)
		if err != nil {
			panic(fmt.Sprintf("simulating %s: %v", g.ID, err))
		}
		s.ApplyResult(g, res)
		e.metrics.recordGame(res)
		logrus.Debugf("%s: %s %d - %d %s (MVP %s)", g.ID, home.Name, res.HomeScore, res.AwayScore, away.Name, res.MVPName)
		rep.Games = append(rep.Games, res)

		rep.Records = append(rep.Records, CheckRecords(s, res)...)
		creditGame(s, res)
		if g.IsPlayoff() {
			out := schedule.Record(s, g, e.cfg.Season.SeriesWins)
			if out.Clinched {
				creditSeries(s, out.Series)
				s.AddNews(fmt.Sprintf("PLAYOFFS: %s win series %s (%d-%d).", s.TeamName(out.Series.WinnerID), out.Series.ID, out.Series.W1, out.Series.W2))
			}
			if out.ChampionID != "" {
				rep.Awards = e.crown()
			}
		}
	}

	regular := s.CurrentDay <= s.RegularSeasonDays
	if regular {
		rep.Signings = economy.MidseasonFreeAgency(s, e.cfg.Economy, e.rng(sim.SubsystemEconomy))
		e.recordSignings(rep.Signings, "midseason")
		rep.Trade = e.maybeAITrade()
	}

	s.CurrentDay++
	e.advanceDate()
	e.metrics.recordDay()
	if rep.Awards == nil && s.CurrentDay > s.RegularSeasonDays {
		if len(s.Playoffs) == 0 {
			if err := schedule.Start(s); err != nil {
				logrus.Warnf("playoffs not started: %v", err)
			} else {
				s.AddNews(fmt.Sprintf("PLAYOFFS: the %d postseason begins.", s.SeasonYear))
			}
		} else {
			schedule.ScheduleNext(s)
		}
	}
	return rep
}

// maybeAITrade rolls for an AI-to-AI trade inside the trade window.
func (e *Engine) maybeAITrade() *economy.AITrade {
	s := e.state
	days := s.RegularSeasonDays
	if days <= 0 || s.CurrentDay <= e.cfg.Economy.AITradeStartDay ||
		float64(s.CurrentDay) >= e.cfg.Economy.AITradeDeadline*float64(days) {
		return nil
	}
	progress := float64(s.CurrentDay) / float64(days)
	t, done := economy.AttemptAITrade(s, progress, e.cfg.Economy, e.rng(sim.SubsystemEconomy))
	if !done {
		return nil
	}
	s.AddNews("TRADE: " + t.Headline)
	e.recordTrade(t.Mode, t.Proposal, t.ValueA, t.ValueB)
	return t
}

// crown closes the playoffs: awards are archived and the user is credited.
func (e *Engine) crown() *sim.SeasonAwards {
	s := e.state
	a, fresh := career.RecordAwards(s)
	if !fresh {
		return nil
	}
	s.AddNews(fmt.Sprintf("CHAMPIONS: %s win the %d title! MVP %s, Finals MVP %s.", a.Champion, a.Year, a.MVP, a.FMVP))
	creditChampionship(s, a)
	e.metrics.recordSeason()
	return &a
}

func (e *Engine) recordSignings(signings []economy.Signing, source string) {
	for _, sg := range signings {
		e.trace.RecordSigning(trace.SigningRecord{
			Date:     e.state.DateStamp(),
			PlayerID: sg.PlayerID,
			TeamID:   sg.TeamID,
			Salary:   sg.Salary,
			Years:    sg.Years,
			Source:   source,
		})
	}
	e.metrics.recordSignings(source, len(signings))
}

func (e *Engine) recordTrade(mode string, pr economy.Proposal, valueA, valueB int) {
	e.trace.RecordTrade(trace.TradeRecord{
		Date:    e.state.DateStamp(),
		Mode:    mode,
		TeamA:   pr.TeamA,
		AssetsA: FormatAssets(pr.AssetsA),
		TeamB:   pr.TeamB,
		AssetsB: FormatAssets(pr.AssetsB),
		ValueA:  valueA,
		ValueB:  valueB,
	})
	e.metrics.recordTrade(mode)
}
