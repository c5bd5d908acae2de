package career

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/schedule"
)

// awardMinGames is the minimum season games for MVP and All-League votes.
const awardMinGames = 10

type candidate struct {
	p     *sim.Player
	score float64
}

// MVPScore is per-game counting production times (1 + team win%).
func MVPScore(p *sim.Player, t *sim.Team) float64 {
	return p.Stats.PerGame(p.Stats.CountingTotal()) * (1 + t.WinPct())
}

// candidates ranks rostered players with enough games by MVPScore.
func candidates(s *sim.LeagueState) []candidate {
	var out []candidate
	for _, p := range s.Players {
		if p.Stats.Games < awardMinGames || p.TeamID == sim.FreeAgentTeamID {
			continue
		}
		t := s.Team(p.TeamID)
		if t == nil {
			continue
		}
		out = append(out, candidate{p, MVPScore(p, t)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

// FinalsMVP picks the champion-roster player with the best
// pts + 1.5*reb + 2*ast season line. Nil for an empty roster.
func FinalsMVP(roster []*sim.Player) *sim.Player {
	var best *sim.Player
	bestScore := 0.0
	for _, p := range roster {
		v := float64(p.Stats.Points) + 1.5*float64(p.Stats.Rebounds) + 2*float64(p.Stats.Assists)
		if best == nil || v > bestScore {
			best, bestScore = p, v
		}
	}
	return best
}

func awardLabel(s *sim.LeagueState, p *sim.Player) string {
	return fmt.Sprintf("%s (%s)", p.Name(), s.TeamName(p.TeamID))
}

// allLeague fills two guard, two forward and one center slots from the MVP
// ranking. Empty slots read "N/A".
func allLeague(s *sim.LeagueState, ranked []candidate) []sim.AllLeagueSlot {
	want := []sim.Bucket{sim.Guards, sim.Guards, sim.Forwards, sim.Forwards, sim.Centers}
	slots := make([]sim.AllLeagueSlot, len(want))
	used := map[string]bool{}
	for i, b := range want {
		slots[i] = sim.AllLeagueSlot{Pos: b.String(), Name: "N/A"}
		for _, c := range ranked {
			if used[c.p.ID] || c.p.Position.Bucket() != b {
				continue
			}
			used[c.p.ID] = true
			slots[i].PlayerID = c.p.ID
			slots[i].Name = awardLabel(s, c.p)
			break
		}
	}
	return slots
}

// Awards computes the season awards once a champion is crowned.
func Awards(s *sim.LeagueState) (sim.SeasonAwards, bool) {
	champID := s.ChampionID()
	champ := s.Team(champID)
	if champ == nil {
		return sim.SeasonAwards{}, false
	}
	a := sim.SeasonAwards{
		Year:           s.SeasonYear,
		ChampionID:     champID,
		Champion:       champ.Name,
		ChampionRecord: champ.Record(),
		ChampionSeed:   schedule.Seed(s, champID),
		MVP:            "N/A",
		FMVP:           "N/A",
	}
	ranked := candidates(s)
	if len(ranked) > 0 {
		a.MVPID = ranked[0].p.ID
		a.MVP = awardLabel(s, ranked[0].p)
	}
	if f := FinalsMVP(s.Roster(champID)); f != nil {
		a.FMVPID = f.ID
		a.FMVP = awardLabel(s, f)
	}
	a.AllLeague = allLeague(s, ranked)
	return a, true
}

// RecordAwards computes the awards and archives them in the league history.
// A season is archived at most once.
func RecordAwards(s *sim.LeagueState) (sim.SeasonAwards, bool) {
	for _, h := range s.LeagueHistory {
		if h.Year == s.SeasonYear {
			return h, false
		}
	}
	a, ok := Awards(s)
	if !ok {
		return a, false
	}
	s.LeagueHistory = append(s.LeagueHistory, a)
	logrus.Infof("season %d: champion %s (%s), MVP %s, FMVP %s", a.Year, a.Champion, a.ChampionRecord, a.MVP, a.FMVP)
	return a, true
}
