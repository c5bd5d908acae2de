package economy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// Signing records a completed contract.
type Signing struct {
	PlayerID string
	TeamID   string
	Salary   float64
	Years    int
	Star     bool
}

// Sign puts p under contract with teamID at salary for years. A player
// already on the team is extended in place. Fails without mutating when the
// new payroll would exceed the salary cap.
func Sign(s *sim.LeagueState, p *sim.Player, teamID string, salary float64, years int) (bool, string) {
	t := s.Team(teamID)
	if t == nil || teamID == sim.FreeAgentTeamID {
		return false, fmt.Sprintf("unknown team %q", teamID)
	}
	payroll := s.Payroll(teamID)
	if p.TeamID == teamID {
		payroll -= p.Salary
	}
	if payroll+salary > s.SalaryCap {
		return false, fmt.Sprintf("Over the salary cap (cap $%.1fM).", s.SalaryCap)
	}
	if p.TeamID != teamID {
		s.MovePlayer(p, teamID)
		p.Tenure = 0
	}
	p.Salary = salary
	p.ContractYears = years
	return true, fmt.Sprintf("Signed %s for $%.2fM over %d years.", p.Name(), salary, years)
}

// Release sends p to free agency with a minimum salary, no contract, no
// tenure and fresh negotiation patience.
func Release(s *sim.LeagueState, p *sim.Player, cfg sim.EconomyConfig) {
	s.EnsureFreeAgentTeam()
	s.MovePlayer(p, sim.FreeAgentTeamID)
	p.ContractYears = 0
	p.Salary = cfg.MinSalary
	p.Tenure = 0
	p.Negotiation = sim.Negotiation{Allowed: true, Patience: sim.DefaultPatience, MaxPatience: sim.DefaultPatience}
}

// MidseasonFreeAgency gives every AI team a small daily chance to sign the
// best free agent it can afford. When the top free agent is a star, teams hunt
// harder, may carry a bigger roster, and only sign stars.
func MidseasonFreeAgency(s *sim.LeagueState, cfg sim.EconomyConfig, rng *rand.Rand) []Signing {
	if len(s.Roster(sim.FreeAgentTeamID)) == 0 {
		return nil
	}
	var out []Signing
	for _, t := range s.AITeams() {
		fas := s.FreeAgents()
		if len(fas) == 0 {
			break
		}
		starHunt := fas[0].Rating >= cfg.StarRating
		limit, chance := cfg.MidseasonRosterLimit, cfg.MidseasonSignChance
		if starHunt {
			limit, chance = cfg.StarHuntRosterLimit, cfg.StarHuntChance
		}
		if len(s.Roster(t.ID)) >= limit || rng.Float64() > chance {
			continue
		}
		space := CapSpace(s, t.ID)
		if space < cfg.MidseasonMinCapSpace {
			continue
		}
		var target *sim.Player
		for _, fa := range fas {
			if starHunt && fa.Rating < cfg.StarRating {
				break
			}
			if MarketValue(fa, cfg) <= space {
				target = fa
				break
			}
		}
		if target == nil {
			continue
		}
		star := target.Rating >= cfg.StarRating
		years := 1
		if star {
			years = sim.RandInt(rng, 2, 4)
		}
		salary := MarketValue(target, cfg)
		if ok, _ := Sign(s, target, t.ID, salary, years); ok {
			logrus.Debugf("fa: %s signed %s (%d) for $%.2fM", t.Name, target.Name(), target.Rating, salary)
			out = append(out, Signing{PlayerID: target.ID, TeamID: t.ID, Salary: salary, Years: years, Star: star})
		}
	}
	return out
}

// OffseasonFreeAgency fills AI rosters toward the target size. Each team
// signs at most MaxSigningsPerPass players per pass, best first: stars are
// signed regardless of fit, other players when they fill a thin position
// group, and anyone at all while the roster is below the panic size.
func OffseasonFreeAgency(s *sim.LeagueState, cfg sim.EconomyConfig, rng *rand.Rand) []Signing {
	var out []Signing
	for _, t := range s.AITeams() {
		roster := s.Roster(t.ID)
		if cfg.RosterTarget-len(roster) <= 0 {
			continue
		}
		counts := sim.BucketCounts(roster)
		space := CapSpace(s, t.ID)
		signed := 0
		for _, fa := range s.FreeAgents() {
			if signed >= cfg.MaxSigningsPerPass || len(s.Roster(t.ID)) >= cfg.RosterTarget {
				break
			}
			star := fa.Rating >= cfg.StarRating
			fit := fitsNeed(fa.Position.Bucket(), counts)
			if !star && !fit && len(s.Roster(t.ID)) >= cfg.RosterPanic {
				continue
			}
			ask := MarketValue(fa, cfg)
			if space < ask {
				continue
			}
			years := sim.RandInt(rng, 1, 2)
			if star {
				years = sim.RandInt(rng, 3, 5)
			}
			if ok, _ := Sign(s, fa, t.ID, ask, years); !ok {
				continue
			}
			space -= ask
			signed++
			counts[fa.Position.Bucket()]++
			out = append(out, Signing{PlayerID: fa.ID, TeamID: t.ID, Salary: ask, Years: years, Star: star})
			if star || fa.Rating >= 78 {
				s.AddNews(fmt.Sprintf("BREAKING: %s have signed free agent %s (OVR %d)!", t.Name, fa.Name(), fa.Rating))
			}
		}
	}
	return out
}

func fitsNeed(b sim.Bucket, counts map[sim.Bucket]int) bool {
	switch b {
	case sim.Centers:
		return counts[sim.Centers] < 2
	case sim.Guards:
		return counts[sim.Guards] < 4
	default:
		return counts[sim.Forwards] < 4
	}
}

// Renewal is an AI contract extension.
type Renewal struct {
	PlayerID string
	TeamID   string
	Salary   float64
	Years    int
}

// IsCore reports whether an AI team considers p worth renewing.
func IsCore(p *sim.Player) bool {
	return p.Rating >= 80 || (p.Rating >= 75 && p.Potential >= 80)
}

// AIRenewals extends expiring core players of AI teams before contracts run
// out, most valuable first, while the raise fits in cap space minus a reserve
// kept for filling the roster to the reserve size.
func AIRenewals(s *sim.LeagueState, cfg sim.EconomyConfig, rng *rand.Rand) []Renewal {
	var out []Renewal
	for _, t := range s.AITeams() {
		roster := s.Roster(t.ID)
		var expiring []*sim.Player
		for _, p := range roster {
			if p.ContractYears <= 1 {
				expiring = append(expiring, p)
			}
		}
		if len(expiring) == 0 {
			continue
		}
		sort.SliceStable(expiring, func(i, j int) bool {
			return expiring[i].Rating*3+expiring[i].Potential*2 > expiring[j].Rating*3+expiring[j].Potential*2
		})
		space := CapSpace(s, t.ID)
		reserve := float64(max(0, cfg.RosterReserve-len(roster))) * 1.0
		for _, p := range expiring {
			if !IsCore(p) {
				continue
			}
			fmv := MarketValue(p, cfg)
			raise := fmv - p.Salary
			if space-reserve < raise {
				logrus.Debugf("renewal: %s cannot afford %s", t.Name, p.Name())
				continue
			}
			years := sim.RandInt(rng, 3, 5)
			p.Salary = fmv
			p.ContractYears = years
			p.Tenure += years
			space -= raise
			out = append(out, Renewal{PlayerID: p.ID, TeamID: t.ID, Salary: fmv, Years: years})
			logrus.Debugf("renewal: %s extended %s for $%.2fM/%d", t.Name, p.Name(), fmv, years)
		}
	}
	return out
}
