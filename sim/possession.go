package sim

// ovrFactor scales attribute impact by the player's rating relative to the
// configured baseline.
func (g *gameSim) ovrFactor(p *Player) float64 {
	return 1.0 + float64(p.Rating-g.cfg.OVR.Baseline)*g.cfg.OVR.FactorPerPoint
}

// usageWeight is the relative chance that p takes the shot this possession.
func (g *gameSim) usageWeight(p *Player, strategy Strategy) float64 {
	u := g.cfg.Usage
	at := p.Attributes
	w := float64(at.Inside)*u.AttributeWeights.Inside +
		float64(at.Outside)*u.AttributeWeights.Outside +
		float64(at.Consistency)*u.AttributeWeights.Consistency
	w = pow(w, u.AttributeExponent)

	if idx := strategy.OptionIndex(p.ID); idx >= 0 && idx < len(u.OptionMultipliers) {
		w *= u.OptionMultipliers[idx]
	}
	if m, ok := u.RotationMultipliers[strategy.RoleOf(p.ID)]; ok {
		w *= m
	}
	switch {
	case strategy.Tactic == TacticInside && p.Position.IsBig():
		w *= u.TacticsBonus
	case strategy.Tactic == TacticOutside && (p.Position.IsGuard() || p.Position == SmallForward):
		w *= u.TacticsBonus
	}

	fga := g.box[p.ID].FGA
	for _, tier := range u.FatigueTiers {
		if fga >= tier.Attempts {
			w *= tier.Multiplier
			break
		}
	}
	return w
}

// threePointTendency is the probability that the attacker's shot is a three.
func (g *gameSim) threePointTendency(p *Player, tactic Tactic) float64 {
	s := g.cfg.Shooting
	tendency := s.ThreePointTendency
	switch out := p.Attributes.Outside; {
	case out >= s.EliteShooterRating:
		tendency += s.EliteShooterBoost
	case out >= s.GoodShooterRating:
		tendency += s.GoodShooterBoost
	case out < s.PoorShooterRating:
		tendency -= s.PoorShooterPenalty
	}
	if !p.Position.IsPerimeter() {
		if p.Attributes.Outside > s.StretchBigRating {
			tendency = s.StretchBigTendency
		} else {
			tendency = s.BigTendency
		}
	}
	switch tactic {
	case TacticOutside:
		tendency += s.TacticTendency.Outside
	case TacticInside:
		tendency += s.TacticTendency.Inside
	case TacticPace:
		tendency += s.TacticTendency.Pace
	}
	return tendency
}

// blockPositionMultiplier scales block chance by defender position.
func (g *gameSim) blockPositionMultiplier(p *Player) float64 {
	m := g.cfg.Defense.BlockPosition
	switch {
	case p.Position.IsBig():
		return m.Big
	case p.Position.Bucket() == Forwards:
		return m.Forward
	case p.Position.Bucket() == Guards:
		return m.Guard
	}
	return 1.0
}

// reboundWeight is p's weight in the rebound contest.
func (g *gameSim) reboundWeight(p *Player, defending bool) float64 {
	r := g.cfg.Rebounding
	mult := 1.0
	switch {
	case p.Position == Center:
		mult = r.Position.Center
	case p.Position == PowerForward:
		mult = r.Position.Power
	case p.Position.Bucket() == Forwards:
		mult = r.Position.Forward
	case p.Position.Bucket() == Guards:
		mult = r.Position.Guard
	}
	w := float64(p.Attributes.Rebound) * g.ovrFactor(p) * mult
	if defending {
		w *= r.DefenseWeight
	}
	return w
}

// defenseResistance damps the defender's impact on star attackers.
func (g *gameSim) defenseResistance(attacker *Player) float64 {
	d := g.cfg.Defense
	switch {
	case attacker.Rating >= d.SuperstarRating:
		return d.SuperstarResistance
	case attacker.Rating >= d.StarRating:
		return d.StarResistance
	}
	return 1.0
}

// possession simulates one offensive trip and returns the points scored.
func (g *gameSim) possession(off *Team, offUnit, defUnit []*Player, comeback bool) int {
	if len(offUnit) == 0 || len(defUnit) == 0 {
		return 0
	}
	strategy := off.Strategy

	weights := make([]float64, len(offUnit))
	for i, p := range offUnit {
		weights[i] = g.usageWeight(p, strategy)
	}
	ai := WeightedIndex(g.rng, weights)
	attacker := offUnit[ai]
	var defender *Player
	if ai < len(defUnit) {
		defender = defUnit[ai]
	} else {
		defender = defUnit[g.rng.Intn(len(defUnit))]
	}
	atkBox, defBox := g.box[attacker.ID], g.box[defender.ID]
	offF, defF := g.ovrFactor(attacker), g.ovrFactor(defender)
	d := g.cfg.Defense

	// Turnover.
	toChance := d.BaseTurnoverChance
	toChance -= (float64(attacker.Attributes.Passing)*offF + float64(attacker.Attributes.Consistency)*offF) / d.TurnoverDivisor
	toChance += (float64(defender.Attributes.Steal)*defF + float64(defender.Attributes.Defense)*defF) / d.StealDivisor
	if g.rng.Float64() < toChance {
		atkBox.Turnovers++
		if g.rng.Float64() < d.StealShareOfTurnovers {
			defBox.Steals++
		}
		return 0
	}

	atkBox.FGA++

	// Block.
	blockStat := float64(defender.Attributes.Block) * defF
	blockChance := d.BaseBlockChance + blockStat/d.BlockDivisor*g.blockPositionMultiplier(defender)
	if attacker.Position.IsGuard() && defender.Position.IsBig() {
		blockChance += d.BigBlocksSmallBonus
	}
	if g.rng.Float64() < blockChance {
		defBox.Blocks++
		return 0
	}

	// Shot.
	s := g.cfg.Shooting
	isThree := g.rng.Float64() < g.threePointTendency(attacker, strategy.Tactic)
	shotRaw := attacker.Attributes.Inside
	if isThree {
		shotRaw = attacker.Attributes.Outside
	}
	shotVal := float64(shotRaw) * offF
	defVal := float64(defender.Attributes.Defense) * defF * g.defenseResistance(attacker)

	streak := g.streak[attacker.ID]
	if streak >= g.cfg.Microwave.StreakReq {
		shotVal += float64(attacker.OffenseStatus) / 100.0 * g.cfg.Microwave.MaxBonus
	}
	if atkBox.FGA > s.FatigueThreshold {
		shotVal -= float64(atkBox.FGA-s.FatigueThreshold) * s.FatiguePerShot
	}

	diff := shotVal - defVal
	if diff < 0 {
		diff *= d.DefenseImpactFactor
	}
	pct := s.BasePct + diff/s.AttributeImpactDivisor

	vLow := s.VarianceLow + float64(attacker.Attributes.Consistency)/100.0*g.cfg.Consistency.FloorBonus
	vLow = min(vLow, s.VarianceHigh-0.01)
	pct *= RandUniform(g.rng, vLow, s.VarianceHigh)

	if streak > 0 {
		pct += min(float64(streak)*s.HotHandPerStreak, s.HotHandCap)
	}
	if isThree {
		pct *= s.ThreePointPenalty
	}
	pct += g.boost[attacker.ID]
	if g.bottom[attacker.ID] {
		if isThree {
			pct += g.cfg.Engagement.BottomThreeBonus
		} else {
			pct += g.cfg.Engagement.BottomTwoBonus
		}
	}
	if comeback {
		pct += g.cfg.Engagement.ComebackBonus
	}

	if isThree {
		atkBox.ThreePA++
	} else {
		atkBox.TwoPA++
	}

	if g.rng.Float64() >= pct {
		g.streak[attacker.ID] = 0
		g.rebound(offUnit, defUnit)
		return 0
	}

	g.streak[attacker.ID]++
	atkBox.FGM++
	points := 2
	if isThree {
		atkBox.ThreePM++
		points = 3
	} else {
		atkBox.TwoPM++
	}
	if g.rng.Float64() < s.AndOneChance {
		points++
	}
	atkBox.Points += points
	g.assist(attacker, offUnit)
	return points
}

// assist picks a passer weighted by passing and credits the assist with a
// probability that grows with the passer's passing attribute.
func (g *gameSim) assist(attacker *Player, unit []*Player) {
	var mates []*Player
	for _, p := range unit {
		if p.ID != attacker.ID {
			mates = append(mates, p)
		}
	}
	if len(mates) == 0 {
		return
	}
	pm := g.cfg.Playmaking
	weights := make([]float64, len(mates))
	for i, p := range mates {
		weights[i] = pow(float64(p.Attributes.Passing), pm.PasserExponent)
	}
	passer := mates[WeightedIndex(g.rng, weights)]
	pass := float64(passer.Attributes.Passing)
	if g.rng.Float64() < pass*pass/pm.AssistDivisor*g.ovrFactor(passer) {
		g.box[passer.ID].Assists++
	}
}

// rebound resolves a missed shot among all ten players on court.
func (g *gameSim) rebound(offUnit, defUnit []*Player) {
	candidates := make([]*Player, 0, len(offUnit)+len(defUnit))
	weights := make([]float64, 0, len(offUnit)+len(defUnit))
	for _, p := range offUnit {
		candidates = append(candidates, p)
		weights = append(weights, g.reboundWeight(p, false))
	}
	for _, p := range defUnit {
		candidates = append(candidates, p)
		weights = append(weights, g.reboundWeight(p, true))
	}
	i := WeightedIndex(g.rng, weights)
	box := g.box[candidates[i].ID]
	box.Rebounds++
	if i < len(offUnit) {
		box.OffRebounds++
	} else {
		box.DefRebounds++
	}
}
