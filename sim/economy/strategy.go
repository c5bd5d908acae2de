package economy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// Market is the league-wide view an AI trade strategy works from.
type Market struct {
	State   *sim.LeagueState
	Config  sim.EconomyConfig
	RNG     *rand.Rand
	Needs   map[string]Needs
	Buyers  []*sim.Team
	Sellers []*sim.Team
}

// NewMarket classifies every AI team.
func NewMarket(s *sim.LeagueState, cfg sim.EconomyConfig, rng *rand.Rand) *Market {
	m := &Market{State: s, Config: cfg, RNG: rng, Needs: map[string]Needs{}}
	for _, t := range s.AITeams() {
		n := AnalyzeNeeds(s, t)
		m.Needs[t.ID] = n
		switch n.Status {
		case Buyer:
			m.Buyers = append(m.Buyers, t)
		case Seller:
			m.Sellers = append(m.Sellers, t)
		}
	}
	return m
}

// TradeStrategy builds one AI-to-AI trade proposal. TeamA of the proposal is
// the initiating buyer and TeamB the side that must accept.
type TradeStrategy interface {
	Name() string
	Propose(m *Market) (pr Proposal, headline string, ok bool)
}

// NewTradeStrategy creates a trade strategy by name.
// Valid names are defined in sim.ValidTradeModes.
// Panics on unrecognized names.
func NewTradeStrategy(name string) TradeStrategy {
	if !sim.ValidTradeModes[name] {
		panic(fmt.Sprintf("unknown trade mode %q", name))
	}
	switch name {
	case "dump":
		return &DumpStrategy{}
	case "fill":
		return &FillStrategy{}
	case "upgrade":
		return &UpgradeStrategy{}
	default:
		panic(fmt.Sprintf("unhandled trade mode %q", name))
	}
}

func pickTeam(rng *rand.Rand, ts []*sim.Team) *sim.Team { return ts[rng.Intn(len(ts))] }

func firstPick(t *sim.Team, round int) (sim.DraftPick, bool) {
	if ps := t.PicksInRound(round); len(ps) > 0 {
		return ps[0], true
	}
	return sim.DraftPick{}, false
}

// DumpStrategy has a seller move a veteran or unhappy player for a pick.
type DumpStrategy struct{}

func (*DumpStrategy) Name() string { return "dump" }

func (*DumpStrategy) Propose(m *Market) (Proposal, string, bool) {
	seller := pickTeam(m.RNG, m.Sellers)
	roster := m.State.Roster(seller.ID)
	var candidates []*sim.Player
	for _, p := range roster {
		if (p.Age >= 30 && p.Rating > 75) || Happiness(p) < 40 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		for _, p := range roster {
			if p.ContractYears == 1 {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Proposal{}, "", false
	}
	bait := candidates[m.RNG.Intn(len(candidates))]
	buyer := pickTeam(m.RNG, m.Buyers)

	pk, ok := sim.DraftPick{}, false
	if bait.Rating >= m.Config.StarRating {
		pk, ok = firstPick(buyer, 1)
	}
	if !ok {
		pk, ok = firstPick(buyer, 2)
	}
	if !ok {
		return Proposal{}, "", false
	}
	pr := Proposal{TeamA: buyer.ID, AssetsA: []Asset{PickAsset{pk}}, TeamB: seller.ID, AssetsB: []Asset{PlayerAsset{bait}}}
	headline := fmt.Sprintf("TRADE: %s send veteran %s to %s for a %s pick (dump)", seller.Name, bait.Name(), buyer.Name, PickAsset{pk})
	return pr, headline, true
}

// FillStrategy has a buyer plug a positional hole with a pick and a filler.
type FillStrategy struct{}

func (*FillStrategy) Name() string { return "fill" }

func (*FillStrategy) Propose(m *Market) (Proposal, string, bool) {
	var needy []*sim.Team
	for _, b := range m.Buyers {
		if len(m.Needs[b.ID].Needs) > 0 {
			needy = append(needy, b)
		}
	}
	if len(needy) == 0 {
		return Proposal{}, "", false
	}
	buyer := pickTeam(m.RNG, needy)
	wants := m.Needs[buyer.ID].Needs
	need := wants[m.RNG.Intn(len(wants))]

	var matching []*sim.Team
	for _, s := range m.Sellers {
		if m.Needs[s.ID].HasSurplus(need) {
			matching = append(matching, s)
		}
	}
	if len(matching) == 0 {
		matching = m.Sellers
	}
	seller := pickTeam(m.RNG, matching)

	var target *sim.Player
	for _, p := range m.State.Roster(seller.ID) {
		if p.Position.Bucket() == need && p.Rating >= 70 && (target == nil || p.Rating > target.Rating) {
			target = p
		}
	}
	if target == nil {
		return Proposal{}, "", false
	}

	var offer []Asset
	round := 2
	if target.Rating >= m.Config.StarRating {
		round = 1
	}
	pk, ok := firstPick(buyer, round)
	if !ok {
		pk, ok = firstPick(buyer, 2)
	}
	if ok {
		offer = append(offer, PickAsset{pk})
	}
	var filler *sim.Player
	for _, p := range m.State.Roster(buyer.ID) {
		if filler == nil || p.Rating < filler.Rating {
			filler = p
		}
	}
	if filler != nil {
		offer = append(offer, PlayerAsset{filler})
	}
	if len(offer) == 0 {
		return Proposal{}, "", false
	}
	pr := Proposal{TeamA: buyer.ID, AssetsA: offer, TeamB: seller.ID, AssetsB: []Asset{PlayerAsset{target}}}
	headline := fmt.Sprintf("TRADE: %s add %s %s from %s (fill)", buyer.Name, target.Position, target.Name(), seller.Name)
	return pr, headline, true
}

// UpgradeStrategy has a buyer package its weakest starter, a first-round
// pick and a young prospect for a clearly better player at that position.
type UpgradeStrategy struct{}

func (*UpgradeStrategy) Name() string { return "upgrade" }

func (*UpgradeStrategy) Propose(m *Market) (Proposal, string, bool) {
	buyer := pickTeam(m.RNG, m.Buyers)
	roster := m.State.Roster(buyer.ID)
	if len(roster) < sim.UnitSize {
		return Proposal{}, "", false
	}
	sorted := append([]*sim.Player(nil), roster...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	weakest := sorted[sim.UnitSize-1]

	seller := pickTeam(m.RNG, m.Sellers)
	var target *sim.Player
	for _, p := range m.State.Roster(seller.ID) {
		if p.Position == weakest.Position && p.Rating > weakest.Rating+5 && (target == nil || p.Rating > target.Rating) {
			target = p
		}
	}
	if target == nil {
		return Proposal{}, "", false
	}
	pk, ok := firstPick(buyer, 1)
	if !ok {
		return Proposal{}, "", false
	}
	offer := []Asset{PlayerAsset{weakest}, PickAsset{pk}}
	for _, p := range roster {
		if p != weakest && p.Age < 24 && p.Rating < 75 {
			offer = append(offer, PlayerAsset{p})
			break
		}
	}
	pr := Proposal{TeamA: buyer.ID, AssetsA: offer, TeamB: seller.ID, AssetsB: []Asset{PlayerAsset{target}}}
	headline := fmt.Sprintf("BLOCKBUSTER: %s package picks to land %s from %s", buyer.Name, target.Name(), seller.Name)
	return pr, headline, true
}

// TradeModes lists the trade modes in the order weights are drawn.
var TradeModes = []string{"dump", "fill", "upgrade"}

// AITrade is an executed AI-to-AI trade. ValueA and ValueB are each side's
// asset value as the league stood before the trade.
type AITrade struct {
	Mode     string
	Proposal Proposal
	Headline string
	ValueA   int
	ValueB   int
}

// TradeChance is the daily AI trade probability at a given fraction of the
// regular season: the rush window before the deadline is busier.
func TradeChance(progress float64, cfg sim.EconomyConfig) float64 {
	if progress >= cfg.AITradeRushStart && progress <= cfg.AITradeDeadline {
		return cfg.AITradeDeadlineChance
	}
	return cfg.AITradeChance
}

// AttemptAITrade rolls for one AI-to-AI trade. When the roll succeeds and both
// buyers and sellers exist, a weighted mode builds a proposal that is executed
// if it passes ownership, cap and fairness checks.
func AttemptAITrade(s *sim.LeagueState, progress float64, cfg sim.EconomyConfig, rng *rand.Rand) (*AITrade, bool) {
	if rng.Float64() > TradeChance(progress, cfg) {
		return nil, false
	}
	m := NewMarket(s, cfg, rng)
	if len(m.Buyers) == 0 || len(m.Sellers) == 0 {
		return nil, false
	}
	weights := make([]float64, len(TradeModes))
	for i, mode := range TradeModes {
		weights[i] = float64(cfg.TradeModeWeights[mode])
	}
	mode := TradeModes[sim.WeightedIndex(rng, weights)]
	strategy := NewTradeStrategy(mode)

	pr, headline, ok := strategy.Propose(m)
	if !ok {
		return nil, false
	}
	if ok, why := CheckOwnership(s, pr); !ok {
		logrus.Debugf("ai trade (%s): %s", mode, why)
		return nil, false
	}
	if ok, why := ValidateTrade(s, pr, cfg); !ok {
		logrus.Debugf("ai trade (%s): %s", mode, why)
		return nil, false
	}
	if !EvaluateFairness(s, pr.AssetsA, pr.AssetsB).Accept {
		return nil, false
	}
	t := &AITrade{
		Mode:     mode,
		Proposal: pr,
		Headline: headline,
		ValueA:   TotalValue(s, pr.AssetsA),
		ValueB:   TotalValue(s, pr.AssetsB),
	}
	ExecuteTrade(s, pr)
	logrus.Debugf("ai trade (%s): %s", mode, headline)
	return t, true
}
