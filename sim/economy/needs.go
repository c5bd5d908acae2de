package economy

import "github.com/hoopsim/hoopsim/sim"

// MarketStatus is a team's posture in the trade market.
type MarketStatus string

const (
	Neutral MarketStatus = "Neutral"
	Buyer   MarketStatus = "Buyer"
	Seller  MarketStatus = "Seller"
)

// Needs describes a team's trade posture and positional depth.
type Needs struct {
	Status  MarketStatus
	Needs   []sim.Bucket
	Surplus []sim.Bucket
}

// Has reports whether b is among the needed buckets.
func (n Needs) Has(b sim.Bucket) bool { return containsBucket(n.Needs, b) }

// HasSurplus reports whether b is among the surplus buckets.
func (n Needs) HasSurplus(b sim.Bucket) bool { return containsBucket(n.Surplus, b) }

func containsBucket(bs []sim.Bucket, b sim.Bucket) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

// Depth thresholds per bucket: below need is a hole, above surplus is excess.
var depthLimits = []struct {
	bucket        sim.Bucket
	need, surplus int
}{
	{sim.Guards, 3, 5},
	{sim.Forwards, 3, 5},
	{sim.Centers, 2, 3},
}

// AnalyzeNeeds classifies a team. After 10 games a team at or above a .550
// win percentage is a buyer and one at or below .400 a seller.
func AnalyzeNeeds(s *sim.LeagueState, t *sim.Team) Needs {
	n := Needs{Status: Neutral}
	if t.GamesPlayed() >= 10 {
		switch pct := t.WinPct(); {
		case pct >= 0.55:
			n.Status = Buyer
		case pct <= 0.40:
			n.Status = Seller
		}
	}
	counts := sim.BucketCounts(s.Roster(t.ID))
	for _, d := range depthLimits {
		if counts[d.bucket] < d.need {
			n.Needs = append(n.Needs, d.bucket)
		}
		if counts[d.bucket] > d.surplus {
			n.Surplus = append(n.Surplus, d.bucket)
		}
	}
	return n
}
