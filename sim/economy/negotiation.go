package economy

import (
	"fmt"

	"github.com/hoopsim/hoopsim/sim"
)

// Status is a player's answer to a contract offer.
type Status string

const (
	StatusAccept    Status = "accept"
	StatusNegotiate Status = "negotiate"
	StatusReject    Status = "reject"
	StatusWalkAway  Status = "walk_away"
)

// Offer is a proposed contract.
type Offer struct {
	Amount float64 // salary in millions per season
	Years  int
}

// Response is the outcome of one negotiation round.
type Response struct {
	Status   Status
	Message  string
	Ask      float64 // the player's internal ask, 0 when not computed
	Patience int     // remaining patience after this round
	Hint     string  // "close" or "far" on a counter
}

// Hints returned with a counter-offer.
const (
	HintClose = "close"
	HintFar   = "far"
)

// Loyalty discount components.
const (
	tenureDiscount = 0.03
	perfDiscount   = 0.05
	iconDiscount   = 0.10
	maxDiscount    = 0.40
)

// ContractLoyalty is the ask discount (0 to 0.4) a player grants his current
// team: 3% per year of tenure, 5% after a star season (last season over 15
// points per game or over 25 points+rebounds+assists per game), and a further
// 10% for a performing player with at least four years on the team.
func ContractLoyalty(p *sim.Player) float64 {
	perf := 0.0
	if last, ok := p.LastSeason(); ok && last.Games > 0 {
		ppg := last.PerGame(last.Points)
		eff := last.PerGame(last.Points + last.Rebounds + last.Assists)
		if ppg > 15 || eff > 25 {
			perf = perfDiscount
		}
	}
	icon := 0.0
	if p.Tenure >= 4 && perf > 0 {
		icon = iconDiscount
	}
	return min(maxDiscount, float64(p.Tenure)*tenureDiscount+perf+icon)
}

// BasePatience is the seasonal patience granted at a given loyalty discount.
func BasePatience(loyalty float64) int {
	switch {
	case loyalty >= 0.30:
		return 5
	case loyalty >= 0.15:
		return 4
	default:
		return sim.DefaultPatience
	}
}

// Ask computes the player's internal ask for an offer of the given length.
func Ask(p *sim.Player, years int, cfg sim.EconomyConfig) float64 {
	greed := 1.05
	switch {
	case p.Rating >= 90:
		greed = 1.15
	case p.Rating >= 80:
		greed = 1.10
	}
	term := 1.0
	switch {
	case years == 1:
		term = 1.05
	case years >= 4:
		term = 0.95
	}
	return round2(MarketValue(p, cfg) * greed * (1 - ContractLoyalty(p)) * term)
}

// Negotiate runs one round of contract talks between the user team and p.
// A rejected offer costs one point of patience; at zero the player walks
// away for the rest of the season. Negotiate never signs the player.
func Negotiate(p *sim.Player, userTeamID string, offer Offer, cfg sim.EconomyConfig) Response {
	if p.TeamID != sim.FreeAgentTeamID && p.TeamID != userTeamID {
		return Response{Status: StatusReject, Message: "I am under contract with another team."}
	}
	if p.TeamID == userTeamID && p.ContractYears > 1 {
		return Response{
			Status:  StatusReject,
			Message: fmt.Sprintf("I still have %d years left. It is too early to talk about an extension.", p.ContractYears),
		}
	}
	if !p.Negotiation.Allowed || p.Negotiation.Patience <= 0 {
		return Response{Status: StatusWalkAway, Message: "I said I am done talking. See you in free agency."}
	}

	ask := Ask(p, offer.Years, cfg)
	if offer.Amount >= ask*cfg.NegotiationAcceptRatio {
		msg := "That is a fair offer. I accept."
		if ContractLoyalty(p) > 0.1 {
			msg = "Deal! I love this team."
		}
		return Response{Status: StatusAccept, Message: msg, Ask: ask, Patience: p.Negotiation.Patience}
	}

	p.Negotiation.Patience--
	if p.Negotiation.Patience <= 0 {
		p.Negotiation.Patience = 0
		p.Negotiation.Allowed = false
		return Response{Status: StatusWalkAway, Message: "This is going nowhere. I am walking away.", Ask: ask}
	}
	hint := HintFar
	if (ask-offer.Amount)/ask < 0.1 {
		hint = HintClose
	}
	return Response{
		Status:   StatusNegotiate,
		Message:  fmt.Sprintf("Too low (%s). I need at least $%.2fM.", hint, ask),
		Ask:      ask,
		Patience: p.Negotiation.Patience,
		Hint:     hint,
	}
}

// ResetNegotiation restores a player's negotiation state at season start:
// talks are allowed again and patience is refilled to the larger of the
// loyalty-based patience and the stored maximum.
func ResetNegotiation(p *sim.Player) {
	p.ResetNegotiation(BasePatience(ContractLoyalty(p)))
}
