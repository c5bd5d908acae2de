// Package economy implements the roster economy: market valuation, contract
// negotiation, trade valuation and validation, and the autonomous roster
// moves of AI-controlled teams (trades, free agency, renewals).
//
// Every function takes the *sim.LeagueState it works on explicitly. Functions
// that mutate the state move players only through LeagueState.MovePlayer.
package economy

import (
	"math"

	"github.com/hoopsim/hoopsim/sim"
)

// MarketValue is a player's fair salary in millions:
//
//	(0.5 + (max(60, rating)-60)^2 * 0.012 + potentialPremium) * ageDiscount
//
// The premium is 0.1 per point of potential above rating for players under
// 26; players over 34 are discounted 20%. The result is clamped to
// [MinSalary, MaxMarketValue] and rounded to two decimals.
func MarketValue(p *sim.Player, cfg sim.EconomyConfig) float64 {
	base := float64(max(60, p.Rating) - 60)
	v := 0.5 + base*base*0.012
	if p.Age < 26 && p.Potential > p.Rating {
		v += float64(p.Potential-p.Rating) * 0.1
	}
	if p.Age > 34 {
		v *= 0.8
	}
	v = min(max(v, cfg.MinSalary), cfg.MaxMarketValue)
	return round2(v)
}

// CapSpace is the room left under the league salary cap.
func CapSpace(s *sim.LeagueState, teamID string) float64 {
	return s.SalaryCap - s.Payroll(teamID)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
