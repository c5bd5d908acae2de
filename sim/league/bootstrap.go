package league

import (
	"fmt"
	"math/rand"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/career"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/schedule"
)

// minTeams is the smallest league that can run a playoff bracket.
const minTeams = schedule.PlayoffTeams

var dummyTeamNames = []string{"Kaohsiung Steelers", "Taoyuan Pilots", "Formosa Dreamers", "Hsinchu Lioneers"}

var franchiseNames = []string{
	"Taipei Kings", "Taichung Suns", "Tainan Owls", "Keelung Harbor",
	"Yilan Typhoons", "Hualien Pumas", "Chiayi Lanterns", "Pingtung Rays",
	"Miaoli Hawks", "Nantou Peaks", "Changhua Rockets", "Yunlin Farmers",
}

var dummyPositions = []sim.Position{
	sim.PointGuard, sim.PointGuard, sim.ShootingGuard, sim.ShootingGuard,
	sim.SmallForward, sim.SmallForward, sim.Center, sim.Center,
}

// Bootstrap repairs a loaded or freshly built league so the engine can run
// it: missing potentials are derived, the free-agent team and enough teams
// for a bracket exist, every team holds its pick inventory, a broken active
// draft is regenerated and a brand-new league gets its first schedule.
// Returns a note per repair.
func Bootstrap(s *sim.LeagueState, cfg *sim.Config, rng *rand.Rand) []string {
	var notes []string
	s.EnsureCollections()
	if s.Team(sim.FreeAgentTeamID) == nil {
		s.EnsureFreeAgentTeam()
		notes = append(notes, "created the free-agent team")
	}

	derived := 0
	for _, p := range append(append([]*sim.Player(nil), s.Players...), s.DraftClass...) {
		if p.Potential == 0 {
			p.Potential = sim.DerivePotential(p.Age, p.Rating, rng)
			derived++
		}
	}
	if derived > 0 {
		notes = append(notes, fmt.Sprintf("derived potential for %d players", derived))
	}

	for n := 1; len(s.ActiveTeams()) < minTeams; n++ {
		id := fmt.Sprintf("DT%d", n)
		if s.Team(id) != nil {
			continue
		}
		AddDummyTeam(s, id, dummyTeamNames[(n-1)%len(dummyTeamNames)], cfg, rng)
		notes = append(notes, "added dummy team "+id)
	}

	career.InitPickInventory(s)
	if career.RepairDraft(s, cfg, rng) {
		notes = append(notes, "regenerated the active draft")
	}

	if len(s.Schedule) == 0 && !s.IsDraftActive && len(s.DraftClass) == 0 && len(s.LeagueHistory) == 0 {
		schedule.Generate(s, cfg.Season.RoundRobinCycles, rng)
		notes = append(notes, fmt.Sprintf("scheduled the first season (%d days)", s.RegularSeasonDays))
	}
	return notes
}

// NewLeague generates a fresh league of n teams (at least a bracket's worth)
// with full generated rosters. userTeamID names the user team and may be
// empty for an all-AI league; an unknown ID is ignored.
func NewLeague(cfg *sim.Config, n int, userTeamID string, rng *rand.Rand) *sim.LeagueState {
	s := sim.NewLeagueState(cfg.Season.StartYear, cfg.Season.StartDate, cfg.Economy.SalaryCap)
	s.ScoutingPoints = cfg.Season.ScoutingPoints
	for i := 0; i < max(n, minTeams); i++ {
		id := fmt.Sprintf("T%02d", i+1)
		name := fmt.Sprintf("Team %d", i+1)
		if i < len(franchiseNames) {
			name = franchiseNames[i]
		}
		addGeneratedTeam(s, id, name, cfg.Economy.RosterReserve, cfg, rng)
	}
	if s.Team(userTeamID) != nil && userTeamID != sim.FreeAgentTeamID {
		s.UserTeamID = userTeamID
	}
	return s
}

// AddDummyTeam creates a filler team with a generated roster: two players at
// each of PG, SG, SF and C, all built around one random quality target.
func AddDummyTeam(s *sim.LeagueState, id, name string, cfg *sim.Config, rng *rand.Rand) *sim.Team {
	return addGeneratedTeam(s, id, name, cfg.Season.DummyRosterSize, cfg, rng)
}

func addGeneratedTeam(s *sim.LeagueState, id, name string, size int, cfg *sim.Config, rng *rand.Rand) *sim.Team {
	t := sim.NewTeam(id, name)
	s.Teams = append(s.Teams, t)
	target := sim.RandInt(rng, 60, 85)
	size = max(size, 1)
	for i := 0; i < size; i++ {
		pos := dummyPositions[i%len(dummyPositions)]
		p := sim.NewPlayer(fmt.Sprintf("%s_P%d", id, i+1), career.RookieName(rng), pos, sim.RandInt(rng, 21, 32), dummyAttributes(target, rng))
		p.Number = sim.RandInt(rng, 0, 99)
		p.Potential = sim.DerivePotential(p.Age, p.Rating, rng)
		p.Salary = economy.MarketValue(p, cfg.Economy)
		p.ContractYears = sim.RandInt(rng, 1, 3)
		s.MovePlayer(p, id)
	}
	return t
}

func dummyAttributes(target int, rng *rand.Rand) sim.Attributes {
	roll := func() int { return min(99, max(30, target+sim.RandInt(rng, -8, 8))) }
	return sim.Attributes{
		Inside:      roll(),
		Outside:     roll(),
		Rebound:     roll(),
		Passing:     roll(),
		Consistency: roll(),
		Block:       roll(),
		Steal:       roll(),
		Defense:     roll(),
	}
}
