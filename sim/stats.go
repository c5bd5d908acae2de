package sim

// StatLine is the fixed-schema stat record shared by box scores, season totals
// and career history. Every counter the game simulator produces has a named
// field here, so aggregation and serialization cannot silently drop one.
type StatLine struct {
	Games       int `json:"games"`
	Points      int `json:"pts"`
	Rebounds    int `json:"reb"`
	OffRebounds int `json:"oreb"`
	DefRebounds int `json:"dreb"`
	Assists     int `json:"ast"`
	Steals      int `json:"stl"`
	Blocks      int `json:"blk"`
	Turnovers   int `json:"to"`
	FGM         int `json:"fgm"`
	FGA         int `json:"fga"`
	TwoPM       int `json:"2pm"`
	TwoPA       int `json:"2pa"`
	ThreePM     int `json:"3pm"`
	ThreePA     int `json:"3pa"`
}

// Add accumulates o into s.
func (s *StatLine) Add(o StatLine) {
	s.Games += o.Games
	s.Points += o.Points
	s.Rebounds += o.Rebounds
	s.OffRebounds += o.OffRebounds
	s.DefRebounds += o.DefRebounds
	s.Assists += o.Assists
	s.Steals += o.Steals
	s.Blocks += o.Blocks
	s.Turnovers += o.Turnovers
	s.FGM += o.FGM
	s.FGA += o.FGA
	s.TwoPM += o.TwoPM
	s.TwoPA += o.TwoPA
	s.ThreePM += o.ThreePM
	s.ThreePA += o.ThreePA
}

// GameEfficiency is the single-game MVP measure:
// pts+reb+ast+stl+blk-to-missed shots.
func (s StatLine) GameEfficiency() int {
	return s.Points + s.Rebounds + s.Assists + s.Steals + s.Blocks - s.Turnovers - (s.FGA - s.FGM)
}

// CountingTotal is pts+reb+ast+stl+blk, the season award numerator.
func (s StatLine) CountingTotal() int {
	return s.Points + s.Rebounds + s.Assists + s.Steals + s.Blocks
}

// WeightedProduction is pts + 1.5*ast + 1.2*reb + 2*stl + 2*blk - 1.5*to.
// Used by performance tiers and the happiness loyalty score.
func (s StatLine) WeightedProduction() float64 {
	return float64(s.Points) +
		float64(s.Assists)*1.5 +
		float64(s.Rebounds)*1.2 +
		float64(s.Steals)*2.0 +
		float64(s.Blocks)*2.0 -
		float64(s.Turnovers)*1.5
}

// PerGame divides v by games played, returning 0 when no games were played.
func (s StatLine) PerGame(v int) float64 {
	if s.Games <= 0 {
		return 0
	}
	return float64(v) / float64(s.Games)
}

// SeasonRecord is an archived season of a player's stats.
type SeasonRecord struct {
	Year   int    `json:"year"`
	TeamID string `json:"team_id"`
	StatLine
}

// BoxLine is one player's line in a single game's box score.
type BoxLine struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	StatLine
}
