package economy

import (
	"fmt"
	"math"

	"github.com/hoopsim/hoopsim/sim"
)

// Asset is a tradable asset: a *PlayerAsset or a PickAsset. The set is
// closed; valuation and movement switch over both kinds exhaustively.
type Asset interface {
	isAsset()
	String() string
}

// PlayerAsset is a rostered player offered in a trade.
type PlayerAsset struct{ Player *sim.Player }

// PickAsset is a draft pick offered in a trade.
type PickAsset struct{ Pick sim.DraftPick }

func (PlayerAsset) isAsset() {}
func (PickAsset) isAsset()   {}

func (a PlayerAsset) String() string {
	return fmt.Sprintf("%s (%s %d)", a.Player.Name(), a.Player.Position, a.Player.Rating)
}

func (a PickAsset) String() string { return fmt.Sprintf("%d R%d", a.Pick.Year, a.Pick.Round) }

// Players returns the player assets in order.
func Players(assets []Asset) []*sim.Player {
	var out []*sim.Player
	for _, a := range assets {
		if pa, ok := a.(PlayerAsset); ok {
			out = append(out, pa.Player)
		}
	}
	return out
}

// Salary sums the salaries of the player assets.
func Salary(assets []Asset) float64 { return sim.Payroll(Players(assets)) }

// Happiness is the trade-side loyalty score of a player: performance against
// expectation (0 to 100, 50 on a small sample) plus 15 per year of tenure.
//
// Expected production per game is max(5, rating-50). The current season is
// used unless it has fewer than 5 games and last season had more than 10.
func Happiness(p *sim.Player) int {
	expected := max(5.0, float64(p.Rating-50))
	s := p.Stats
	if s.Games < 5 {
		if last, ok := p.LastSeason(); ok && last.Games > 10 {
			s = last.StatLine
		}
	}
	perf := 50.0
	if s.Games >= 5 {
		ratio := s.WeightedProduction() / float64(s.Games) / expected
		switch {
		case ratio >= 1.2:
			perf = 100
		case ratio <= 0.6:
			perf = 0
		default:
			perf = (ratio - 0.6) / 0.6 * 100
		}
	}
	return int(perf + float64(p.Tenure)*15)
}

// happinessMultiplier scales trade value by Happiness: settled players are
// harder to pry loose, unhappy ones are trade bait.
func happinessMultiplier(h int) float64 {
	switch {
	case h >= 100:
		return 1.5
	case h >= 80:
		return 1.2
	case h < 40:
		return 0.8
	}
	return 1.0
}

// PlayerValue is the trade value of a player:
//
//	max(1, (rating-50)^1.6*1.2 + 1.5*(potential-rating) if age<26 - 15*(age-33) if age>33)
//
// scaled by the happiness multiplier and truncated.
func PlayerValue(p *sim.Player) int {
	base := 1.0
	if p.Rating >= 50 {
		base = math.Pow(float64(p.Rating-50), 1.6) * 1.2
	}
	if p.Age < 26 {
		base += float64(max(0, p.Potential-p.Rating)) * 1.5
	}
	if p.Age > 33 {
		base -= float64(p.Age-33) * 15
	}
	return int(max(1, base) * happinessMultiplier(Happiness(p)))
}

// PickValue is the trade value of a pick. Picks of weak original owners are
// worth more: (max(5, 100-ownerAvgRating))^1.7 * 0.8, times 0.15 for a second
// rounder, times 0.85 two seasons out and 0.70 three or more seasons out.
// An unknown owner is valued as a 75-rated team.
func PickValue(s *sim.LeagueState, pk sim.DraftPick) int {
	strength := 75.0
	if s.Team(pk.OriginalOwnerID) != nil {
		strength = s.AverageRating(pk.OriginalOwnerID)
	}
	v := math.Pow(max(100-strength, 5), 1.7) * 0.8
	if pk.Round == 2 {
		v *= 0.15
	}
	switch diff := pk.Year - s.SeasonYear; {
	case diff == 2:
		v *= 0.85
	case diff >= 3:
		v *= 0.70
	}
	return int(max(1, v))
}

// Value dispatches on the asset kind.
func Value(s *sim.LeagueState, a Asset) int {
	switch a := a.(type) {
	case PlayerAsset:
		return PlayerValue(a.Player)
	case PickAsset:
		return PickValue(s, a.Pick)
	default:
		panic(fmt.Sprintf("unhandled asset %T", a))
	}
}

// TotalValue sums Value over assets.
func TotalValue(s *sim.LeagueState, assets []Asset) int {
	total := 0
	for _, a := range assets {
		total += Value(s, a)
	}
	return total
}
