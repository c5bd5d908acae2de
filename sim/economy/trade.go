package economy

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// Proposal exchanges AssetsA of team A for AssetsB of team B. In fairness
// checks team A is the offering side and team B the side that must accept.
type Proposal struct {
	TeamA   string
	AssetsA []Asset
	TeamB   string
	AssetsB []Asset
}

// CheckOwnership reports whether every asset is currently held by the side
// offering it and no asset appears twice.
func CheckOwnership(s *sim.LeagueState, pr Proposal) (bool, string) {
	seenPlayers := map[string]bool{}
	seenPicks := map[sim.DraftPick]bool{}
	check := func(teamID string, assets []Asset) (bool, string) {
		t := s.Team(teamID)
		if t == nil || teamID == sim.FreeAgentTeamID {
			return false, fmt.Sprintf("unknown team %q", teamID)
		}
		for _, a := range assets {
			switch a := a.(type) {
			case PlayerAsset:
				if a.Player == nil || a.Player.TeamID != teamID {
					return false, fmt.Sprintf("%s does not own %s", t.Name, a)
				}
				if seenPlayers[a.Player.ID] {
					return false, fmt.Sprintf("%s listed twice", a)
				}
				seenPlayers[a.Player.ID] = true
			case PickAsset:
				if !t.HasPick(a.Pick) {
					return false, fmt.Sprintf("%s does not own pick %s", t.Name, a)
				}
				if seenPicks[a.Pick] {
					return false, fmt.Sprintf("pick %s listed twice", a)
				}
				seenPicks[a.Pick] = true
			}
		}
		return true, ""
	}
	if pr.TeamA == pr.TeamB {
		return false, "a team cannot trade with itself"
	}
	if ok, msg := check(pr.TeamA, pr.AssetsA); !ok {
		return false, msg
	}
	return check(pr.TeamB, pr.AssetsB)
}

// ValidateTrade applies the salary-cap rule: a side whose post-trade payroll
// exceeds the cap may not take back more than (1+tolerance) of the outgoing
// salary plus a fixed buffer.
func ValidateTrade(s *sim.LeagueState, pr Proposal, cfg sim.EconomyConfig) (bool, string) {
	salA, salB := Salary(pr.AssetsA), Salary(pr.AssetsB)
	limit := func(out float64) float64 { return out*(1+cfg.TradeSalaryTolerance) + cfg.TradeSalaryBuffer }

	if s.Payroll(pr.TeamA)-salA+salB > s.SalaryCap && salB > limit(salA) {
		return false, fmt.Sprintf("%s would be over the cap.", s.TeamName(pr.TeamA))
	}
	if s.Payroll(pr.TeamB)-salB+salA > s.SalaryCap && salA > limit(salB) {
		return false, fmt.Sprintf("%s would be over the cap.", s.TeamName(pr.TeamB))
	}
	return true, "Valid."
}

// Fairness is the value breakdown behind an acceptance decision.
type Fairness struct {
	Accept  bool
	Offer   float64 // offered value after the star-quality penalty
	Ask     int
	Penalty float64 // multiplier applied to the offer, 1 when none
}

// StarPenalty is the offer multiplier when the best player requested
// out-rates the best player offered by gap points.
func StarPenalty(gap int) float64 {
	switch {
	case gap <= 4:
		return 1
	case gap <= 7:
		return 0.9
	case gap <= 10:
		return 0.7
	default:
		return 0.5
	}
}

// EvaluateFairness decides whether the receiving side accepts offered in
// exchange for requested: the offered value, discounted by the star-quality
// penalty when both sides include players, must be at least the requested value.
func EvaluateFairness(s *sim.LeagueState, offered, requested []Asset) Fairness {
	f := Fairness{Offer: float64(TotalValue(s, offered)), Ask: TotalValue(s, requested), Penalty: 1}
	po, pr := Players(offered), Players(requested)
	if len(po) > 0 && len(pr) > 0 {
		f.Penalty = StarPenalty(bestRating(pr) - bestRating(po))
		f.Offer *= f.Penalty
	}
	f.Accept = f.Offer >= float64(f.Ask)
	return f
}

func bestRating(ps []*sim.Player) int {
	best := 0
	for _, p := range ps {
		best = max(best, p.Rating)
	}
	return best
}

// ExecuteTrade moves every asset to the other side. Moved players start a
// new tenure. Ownership must have been checked by the caller.
func ExecuteTrade(s *sim.LeagueState, pr Proposal) {
	move := func(from, to string, assets []Asset) {
		src, dst := s.Team(from), s.Team(to)
		for _, a := range assets {
			switch a := a.(type) {
			case PlayerAsset:
				s.MovePlayer(a.Player, to)
				a.Player.Tenure = 0
			case PickAsset:
				if src.RemovePick(a.Pick) {
					dst.DraftPicks = append(dst.DraftPicks, a.Pick)
				}
			}
		}
	}
	move(pr.TeamA, pr.TeamB, pr.AssetsA)
	move(pr.TeamB, pr.TeamA, pr.AssetsB)
	logrus.Debugf("trade: %s <-> %s (%d for %d assets)", pr.TeamA, pr.TeamB, len(pr.AssetsA), len(pr.AssetsB))
}

// Candidate is a trade the AI side would accept.
type Candidate struct {
	TeamID string
	Assets []Asset
	Value  int
	Reason string
}

// FindPotentialTrades scans every AI team for packages it would give up in
// exchange for offered: each single player or one of its first two picks,
// then pairs of its cheapest players. Candidates must pass validation and
// fairness; the most valuable are returned first.
func FindPotentialTrades(s *sim.LeagueState, userTeamID string, offered []Asset, cfg sim.EconomyConfig) []Candidate {
	if len(offered) == 0 {
		return nil
	}
	offerValue := TotalValue(s, offered)
	var out []Candidate
	try := func(teamID string, target []Asset) {
		pr := Proposal{TeamA: userTeamID, AssetsA: offered, TeamB: teamID, AssetsB: target}
		if ok, _ := ValidateTrade(s, pr, cfg); !ok {
			return
		}
		if !EvaluateFairness(s, offered, target).Accept {
			return
		}
		v := TotalValue(s, target)
		out = append(out, Candidate{
			TeamID: teamID,
			Assets: target,
			Value:  v,
			Reason: fmt.Sprintf("AI value %d vs offer %d", v, offerValue),
		})
	}

	for _, t := range s.ActiveTeams() {
		if t.ID == userTeamID {
			continue
		}
		roster := s.Roster(t.ID)
		for _, p := range roster {
			try(t.ID, []Asset{PlayerAsset{p}})
		}
		for _, pk := range t.DraftPicks[:min(2, len(t.DraftPicks))] {
			try(t.ID, []Asset{PickAsset{pk}})
		}

		sorted := append([]*sim.Player(nil), roster...)
		sort.SliceStable(sorted, func(i, j int) bool { return PlayerValue(sorted[i]) < PlayerValue(sorted[j]) })
		checked := 0
	pairs:
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if checked >= cfg.PotentialTradePairs {
					break pairs
				}
				checked++
				try(t.ID, []Asset{PlayerAsset{sorted[i]}, PlayerAsset{sorted[j]}})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > cfg.PotentialTradeResults {
		out = out[:cfg.PotentialTradeResults]
	}
	return out
}
