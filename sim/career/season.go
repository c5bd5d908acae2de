// Package career drives rosters across the season boundary: aging and stat
// archival, retirement and the Hall of Fame, attribute progression, contract
// expiry, rookie generation, the two-round draft and the season awards.
//
// StartNewSeason runs the transition steps in their required order. Each step
// is also exported so the orchestrator and tests can drive it on its own.
package career

import (
	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
)

// Report summarizes one season transition.
type Report struct {
	Year        int
	Retirements []Retirement
	Changes     []Change
	Renewals    []economy.Renewal
	Expired     []string
	Rookies     int
}

// StartNewSeason moves the league into the offseason of the next year. The
// order is fixed: age, retire, progress, AI renewals, negotiation reset,
// contract expiry, rookies. Win/loss records and season stats survive until
// FinishDraft so the draft order can still read them.
func StartNewSeason(s *sim.LeagueState, cfg *sim.Config, rngs *sim.PartitionedRNG) Report {
	finished := s.SeasonYear
	s.SeasonYear++
	s.CurrentDay = 1
	s.Schedule = []*sim.Game{}
	s.RegularSeasonDays = 0
	s.ProgressionLog = map[string][]string{}
	s.IsDraftActive = false
	s.DraftOrder = []string{}
	s.DraftLog = []sim.DraftLogEntry{}
	s.DraftPickIndex = 0

	r := Report{Year: s.SeasonYear}
	Age(s, finished)

	prog := rngs.ForSubsystem(sim.SubsystemProgression)
	r.Retirements = Retire(s, cfg, prog)
	r.Changes = Progress(s, cfg.Progression, prog)
	r.Renewals = economy.AIRenewals(s, cfg.Economy, rngs.ForSubsystem(sim.SubsystemEconomy))
	for _, p := range s.Players {
		economy.ResetNegotiation(p)
	}
	r.Expired = ExpireContracts(s, cfg.Economy)
	r.Rookies = len(GenerateClass(s, cfg, rngs.ForSubsystem(sim.SubsystemDraft)))
	s.ScoutingPoints = cfg.Season.ScoutingPoints

	logrus.Infof("season %d: %d retired, %d renewed, %d contracts expired, %d rookies",
		s.SeasonYear, len(r.Retirements), len(r.Renewals), len(r.Expired), r.Rookies)
	return r
}

// Age advances every active player one year and one season of tenure and
// archives the finished season's stats of everyone who played.
func Age(s *sim.LeagueState, finishedYear int) {
	for _, p := range s.Players {
		p.Age++
		p.Tenure++
		if p.Stats.Games > 0 {
			p.History = append(p.History, sim.SeasonRecord{Year: finishedYear, TeamID: p.TeamID, StatLine: p.Stats})
		}
	}
}

// ExpireContracts counts down every contract and releases players whose
// contract has run out. Returns the released player IDs.
func ExpireContracts(s *sim.LeagueState, cfg sim.EconomyConfig) []string {
	var expired []*sim.Player
	for _, p := range s.Players {
		if p.ContractYears > 0 {
			p.ContractYears--
		}
		if p.ContractYears == 0 && p.TeamID != sim.FreeAgentTeamID {
			expired = append(expired, p)
		}
	}
	ids := make([]string, 0, len(expired))
	for _, p := range expired {
		logrus.Debugf("contract expired: %s leaves %s", p.Name(), s.TeamName(p.TeamID))
		economy.Release(s, p, cfg)
		ids = append(ids, p.ID)
	}
	return ids
}

// FinalizeOffseason clears the finished season: playoff series, season stats
// and win/loss records.
func FinalizeOffseason(s *sim.LeagueState) {
	s.Playoffs = []*sim.PlayoffSeries{}
	for _, p := range s.Players {
		p.Stats = sim.StatLine{}
	}
	for _, t := range s.Teams {
		t.Wins, t.Losses = 0, 0
	}
}
