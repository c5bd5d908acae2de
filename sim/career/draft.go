package career

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/schedule"
)

const (
	draftRounds = 2
	pickHorizon = 3 // seasons of future picks each team holds
)

var (
	ErrDraftInactive   = errors.New("the draft is not active")
	ErrNotYourPick     = errors.New("the current pick belongs to another team")
	ErrUnknownProspect = errors.New("player not found in draft class")
)

// InitPickInventory gives every active team without picks its own first and
// second round picks for the next pickHorizon seasons.
func InitPickInventory(s *sim.LeagueState) {
	for _, t := range s.ActiveTeams() {
		if len(t.DraftPicks) > 0 {
			continue
		}
		for off := 1; off <= pickHorizon; off++ {
			for r := 1; r <= draftRounds; r++ {
				t.DraftPicks = append(t.DraftPicks, sim.DraftPick{Year: s.SeasonYear + off, Round: r, OriginalOwnerID: t.ID})
			}
		}
	}
}

// RolloverPicks consumes the picks of the current draft year and issues every
// team its own picks pickHorizon seasons out.
func RolloverPicks(s *sim.LeagueState) {
	teams := s.ActiveTeams()
	for _, t := range teams {
		kept := t.DraftPicks[:0]
		for _, pk := range t.DraftPicks {
			if pk.Year > s.SeasonYear {
				kept = append(kept, pk)
			}
		}
		t.DraftPicks = kept
	}
	year := s.SeasonYear + pickHorizon
	for _, t := range teams {
		for r := 1; r <= draftRounds; r++ {
			pk := sim.DraftPick{Year: year, Round: r, OriginalOwnerID: t.ID}
			if holder(s, pk) == nil {
				t.DraftPicks = append(t.DraftPicks, pk)
			}
		}
	}
}

func holder(s *sim.LeagueState, pk sim.DraftPick) *sim.Team {
	for _, t := range s.Teams {
		if t.HasPick(pk) {
			return t
		}
	}
	return nil
}

// Order builds the two-round draft order as original slot owners: worst
// record first (wins, then losses, ascending), with the runner-up and the
// champion moved to the last two slots of each round.
func Order(s *sim.LeagueState) []string {
	teams := s.ActiveTeams()
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Wins != teams[j].Wins {
			return teams[i].Wins < teams[j].Wins
		}
		return teams[i].Losses < teams[j].Losses
	})
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	if f := s.Finals(); f != nil && f.Done() {
		champ, runner := f.WinnerID, f.LoserID()
		rest := ids[:0:0]
		for _, id := range ids {
			if id != champ && id != runner {
				rest = append(rest, id)
			}
		}
		ids = append(rest, runner, champ)
	}
	order := make([]string, 0, len(ids)*draftRounds)
	for r := 0; r < draftRounds; r++ {
		order = append(order, ids...)
	}
	return order
}

// slot locates an overall pick index within its round.
func slot(s *sim.LeagueState, idx int) (round, pick int) {
	perRound := max(1, len(s.DraftOrder)/draftRounds)
	return idx/perRound + 1, idx%perRound + 1
}

// SlotOwner is the team that makes pick idx: whoever holds the matching pick,
// or the original owner when nobody does.
func SlotOwner(s *sim.LeagueState, idx int) string {
	orig := s.DraftOrder[idx]
	round, _ := slot(s, idx)
	if t := holder(s, sim.DraftPick{Year: s.SeasonYear, Round: round, OriginalOwnerID: orig}); t != nil {
		return t.ID
	}
	return orig
}

// CurrentOwner is the team on the clock, "" when no pick is pending.
func CurrentOwner(s *sim.LeagueState) string {
	if !s.IsDraftActive || s.DraftPickIndex >= len(s.DraftOrder) {
		return ""
	}
	return SlotOwner(s, s.DraftPickIndex)
}

// InitDraft activates the draft, generating a class first when none exists.
func InitDraft(s *sim.LeagueState, cfg *sim.Config, rng *rand.Rand) {
	s.IsDraftActive = true
	s.DraftPickIndex = 0
	s.DraftLog = []sim.DraftLogEntry{}
	if len(s.DraftClass) == 0 {
		GenerateClass(s, cfg, rng)
	}
	s.DraftOrder = Order(s)
	logrus.Infof("draft %d: %d prospects, %d picks", s.SeasonYear, len(s.DraftClass), len(s.DraftOrder))
}

// RepairDraft regenerates the order and class of a draft that is flagged
// active but lost either of them. Reports whether anything was repaired.
func RepairDraft(s *sim.LeagueState, cfg *sim.Config, rng *rand.Rand) bool {
	if !s.IsDraftActive || (len(s.DraftOrder) > 0 && len(s.DraftClass) > 0) {
		return false
	}
	if len(s.DraftClass) == 0 {
		GenerateClass(s, cfg, rng)
	}
	s.DraftOrder = Order(s)
	s.DraftPickIndex = min(s.DraftPickIndex, len(s.DraftOrder))
	logrus.Warnf("draft %d: regenerated missing order/class", s.SeasonYear)
	return true
}

// Prospects are the draft-class players still available.
func Prospects(s *sim.LeagueState) []*sim.Player {
	var out []*sim.Player
	for _, p := range s.DraftClass {
		if p.TeamID == sim.DraftTeamID {
			out = append(out, p)
		}
	}
	return out
}

// DraftScore is 0.4*rating + 0.6*potential.
func DraftScore(p *sim.Player) float64 {
	return 0.4*float64(p.Rating) + 0.6*float64(p.Potential)
}

// AutoPick takes the best prospect by draft score when it leads the second
// best by more than 2 points, otherwise a random one of the top three.
func AutoPick(prospects []*sim.Player, rng *rand.Rand) *sim.Player {
	if len(prospects) == 0 {
		return nil
	}
	ranked := append([]*sim.Player(nil), prospects...)
	sort.SliceStable(ranked, func(i, j int) bool { return DraftScore(ranked[i]) > DraftScore(ranked[j]) })
	top := ranked[:min(3, len(ranked))]
	second := 0.0
	if len(top) > 1 {
		second = DraftScore(top[1])
	}
	if DraftScore(top[0]) > second+2 {
		return top[0]
	}
	return top[rng.Intn(len(top))]
}

// Selection describes one resolved pick.
type Selection struct {
	Overall  int
	Round    int
	Pick     int
	TeamID   string
	PlayerID string // "" when no prospects were left
	Auto     bool
	Final    bool // the draft ended with this pick
}

// Pick resolves the pick on the clock. An empty playerID auto-picks for the
// owning team; a named player may only be chosen on the user team's pick.
// Failed picks leave the state untouched.
func Pick(s *sim.LeagueState, playerID string, rng *rand.Rand) (Selection, error) {
	if !s.IsDraftActive {
		return Selection{}, ErrDraftInactive
	}
	if s.DraftPickIndex >= len(s.DraftOrder) {
		s.IsDraftActive = false
		return Selection{Final: true}, nil
	}
	idx := s.DraftPickIndex
	round, pick := slot(s, idx)
	teamID := SlotOwner(s, idx)
	sel := Selection{Overall: idx + 1, Round: round, Pick: pick, TeamID: teamID}

	var p *sim.Player
	if playerID == "" {
		p = AutoPick(Prospects(s), rng)
		sel.Auto = true
	} else {
		if teamID != s.UserTeamID {
			return Selection{}, fmt.Errorf("%w (%s)", ErrNotYourPick, s.TeamName(teamID))
		}
		for _, q := range Prospects(s) {
			if q.ID == playerID {
				p = q
				break
			}
		}
		if p == nil {
			return Selection{}, ErrUnknownProspect
		}
	}

	s.DraftPickIndex++
	if p != nil {
		s.MovePlayer(p, teamID)
		p.Tenure = 0
		p.DraftedBy = teamID
		sel.PlayerID = p.ID
		s.DraftLog = append(s.DraftLog, sim.DraftLogEntry{
			Round:  round,
			Pick:   pick,
			Team:   s.TeamName(teamID),
			Player: fmt.Sprintf("%s (%s %d)", p.Name(), p.Position, p.Rating),
		})
		if round == 1 {
			s.AddNews(fmt.Sprintf("DRAFT: %s select %s with the %s pick.", s.TeamName(teamID), p.Name(), humanize.Ordinal(pick)))
		}
		logrus.Debugf("draft: #%d %s takes %s (OVR %d, POT %d)", sel.Overall, s.TeamName(teamID), p.Name(), p.Rating, p.Potential)
	}
	if s.DraftPickIndex >= len(s.DraftOrder) {
		s.IsDraftActive = false
		sel.Final = true
	}
	return sel, nil
}

// FinishDraft closes the offseason after the last pick: undrafted prospects
// become free agents, the finished season is cleared, picks roll over, the
// new schedule is generated and AI teams fill their rosters.
func FinishDraft(s *sim.LeagueState, cfg *sim.Config, rngs *sim.PartitionedRNG) []economy.Signing {
	for _, p := range Prospects(s) {
		economy.Release(s, p, cfg.Economy)
	}
	FinalizeOffseason(s)
	RolloverPicks(s)
	schedule.Generate(s, cfg.Season.RoundRobinCycles, rngs.ForSubsystem(sim.SubsystemSchedule))
	if s.SalaryCap > 200 {
		logrus.Warnf("salary cap %.1f out of scale, reset to %.1f", s.SalaryCap, cfg.Economy.SalaryCap)
		s.SalaryCap = cfg.Economy.SalaryCap
	}
	signings := economy.OffseasonFreeAgency(s, cfg.Economy, rngs.ForSubsystem(sim.SubsystemEconomy))
	logrus.Infof("draft %d complete: %d picks, %d free-agent signings, %d games scheduled",
		s.SeasonYear, len(s.DraftLog), len(signings), len(s.Schedule))
	return signings
}

// Scout reveals a draft prospect for cost scouting points.
func Scout(s *sim.LeagueState, playerID string, cost int) (bool, string) {
	if s.ScoutingPoints < cost {
		return false, "Not enough scouting points!"
	}
	var p *sim.Player
	for _, q := range s.DraftClass {
		if q.ID == playerID {
			p = q
			break
		}
	}
	if p == nil {
		return false, ErrUnknownProspect.Error()
	}
	if p.Scouted {
		return false, "Player already scouted."
	}
	p.Scouted = true
	s.ScoutingPoints -= cost
	return true, "Player scouted! Attributes revealed."
}
