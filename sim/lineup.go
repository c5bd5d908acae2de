package sim

import "sort"

// UnitSize is the number of players on court per side.
const UnitSize = 5

// Rotation is a team's playing plan for one game.
type Rotation struct {
	Starters []*Player
	Bench    []*Player
	// Plan holds the active unit for each plan slot. Possession t of n maps to
	// slot t*len(Plan)/n.
	Plan [][]*Player
}

// Unit returns the active unit for possession tick of total possessions.
func (r *Rotation) Unit(tick, total int) []*Player {
	if len(r.Plan) == 0 {
		return nil
	}
	if total <= 0 {
		return r.Plan[len(r.Plan)-1]
	}
	i := tick * len(r.Plan) / total
	if i >= len(r.Plan) {
		i = len(r.Plan) - 1
	}
	return r.Plan[i]
}

// Closing returns the last unit of the plan, used in overtime.
func (r *Rotation) Closing() []*Player {
	if len(r.Plan) == 0 {
		return nil
	}
	return r.Plan[len(r.Plan)-1]
}

type rankedPlayer struct {
	p   *Player
	adj int
}

// BuildRotation buckets the roster into guards, forwards and centers, ranks
// each bucket by rating adjusted for rotation role, and picks 2G+2F+1C as
// starters and the next 2G+2F+1C as the bench. Short groups are filled from
// whatever remains.
func BuildRotation(roster []*Player, strategy Strategy, cfg LineupConfig) *Rotation {
	buckets := map[Bucket][]rankedPlayer{}
	for _, p := range roster {
		adj := p.Rating + cfg.RoleAdjust[strategy.RoleOf(p.ID)]
		b := p.Position.Bucket()
		buckets[b] = append(buckets[b], rankedPlayer{p: p, adj: adj})
	}
	for b := range buckets {
		sort.SliceStable(buckets[b], func(i, j int) bool { return buckets[b][i].adj > buckets[b][j].adj })
	}

	take := func(b Bucket, n int) []*Player {
		var out []*Player
		for i := 0; i < n && len(buckets[b]) > 0; i++ {
			out = append(out, buckets[b][0].p)
			buckets[b] = buckets[b][1:]
		}
		return out
	}
	pickUnit := func() []*Player {
		unit := take(Guards, 2)
		unit = append(unit, take(Forwards, 2)...)
		unit = append(unit, take(Centers, 1)...)
		for len(unit) < UnitSize {
			found := false
			for _, b := range []Bucket{Guards, Forwards, Centers} {
				if len(buckets[b]) > 0 {
					unit = append(unit, take(b, 1)...)
					found = true
					break
				}
			}
			if !found {
				break
			}
		}
		return unit
	}

	rot := &Rotation{Starters: pickUnit(), Bench: pickUnit()}
	benchUnit := rot.Bench
	if len(benchUnit) < UnitSize {
		need := min(UnitSize-len(benchUnit), len(rot.Starters))
		benchUnit = append(append([]*Player{}, benchUnit...), rot.Starters[:need]...)
	}
	rot.Plan = make([][]*Player, cfg.PlanLength)
	for i := range rot.Plan {
		if i >= cfg.BenchStart && i < cfg.BenchEnd {
			rot.Plan[i] = benchUnit
		} else {
			rot.Plan[i] = rot.Starters
		}
	}
	return rot
}

// FavoriteBoosts computes the shooting boost for players the coach marked as
// favorites. A favorite earns the larger of a rank-rise boost (how many places
// the role adjustment lifts them) and a top-of-rotation boost when the adjusted
// rank falls within the first FavoriteTopSlots.
func FavoriteBoosts(roster []*Player, strategy Strategy, cfg EngagementConfig) map[string]float64 {
	boosts := map[string]float64{}
	if len(strategy.Rotation) == 0 {
		return boosts
	}
	raw := append([]*Player{}, roster...)
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].Rating > raw[j].Rating })
	adjOf := func(p *Player) int { return p.Rating + cfg.FavoriteAdjust[strategy.RoleOf(p.ID)] }
	adj := append([]*Player{}, roster...)
	sort.SliceStable(adj, func(i, j int) bool { return adjOf(adj[i]) > adjOf(adj[j]) })

	rawRank := make(map[string]int, len(raw))
	for i, p := range raw {
		rawRank[p.ID] = i
	}
	adjRank := make(map[string]int, len(adj))
	for i, p := range adj {
		adjRank[p.ID] = i
	}
	for _, p := range roster {
		if !strategy.RoleOf(p.ID).IsFavorite() {
			continue
		}
		boost := 0.0
		if rise := rawRank[p.ID] - adjRank[p.ID]; rise > 0 {
			boost = min(float64(rise)*cfg.FavoriteRiseStep, cfg.FavoriteRiseCap)
		}
		if r := adjRank[p.ID]; r < cfg.FavoriteTopSlots {
			boost = max(boost, float64(cfg.FavoriteTopSlots-r)*cfg.FavoriteTopStep)
		}
		if boost > 0 {
			boosts[p.ID] = boost
		}
	}
	return boosts
}

// BottomIDs returns the IDs of the n lowest-rated players of the roster.
func BottomIDs(roster []*Player, n int) map[string]bool {
	sorted := append([]*Player{}, roster...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	out := map[string]bool{}
	for i := 0; i < n && i < len(sorted); i++ {
		out[sorted[i].ID] = true
	}
	return out
}
