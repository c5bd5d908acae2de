package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrEmptyRoster is returned when a side has no players to field.
var ErrEmptyRoster = errors.New("roster is empty")

// Side is one team entering a game: the team record plus its roster.
type Side struct {
	Team   *Team
	Roster []*Player
}

// gameSim holds the per-game mutable state of SimulateGame.
type gameSim struct {
	cfg    *MatchConfig
	rng    *rand.Rand
	box    map[string]*StatLine
	streak map[string]int
	boost  map[string]float64
	bottom map[string]bool
}

func pow(x, y float64) float64 { return math.Pow(x, y) }

// SimulateGame plays home against away possession by possession and returns the
// result. It does not mutate either side; see LeagueState.ApplyResult.
// A nil cfg uses DefaultMatchConfig.
func SimulateGame(home, away Side, cfg *MatchConfig, rng *rand.Rand) (*GameResult, error) {
	if len(home.Roster) == 0 {
		return nil, fmt.Errorf("home team %s: %w", home.Team.ID, ErrEmptyRoster)
	}
	if len(away.Roster) == 0 {
		return nil, fmt.Errorf("away team %s: %w", away.Team.ID, ErrEmptyRoster)
	}
	if cfg == nil {
		def := DefaultMatchConfig()
		cfg = &def
	}

	g := &gameSim{
		cfg:    cfg,
		rng:    rng,
		box:    map[string]*StatLine{},
		streak: map[string]int{},
		boost:  map[string]float64{},
		bottom: map[string]bool{},
	}
	for _, side := range []Side{home, away} {
		for _, p := range side.Roster {
			g.box[p.ID] = &StatLine{Games: 1}
		}
		for id, b := range FavoriteBoosts(side.Roster, side.Team.Strategy, cfg.Engagement) {
			g.boost[id] = b
		}
		for id := range BottomIDs(side.Roster, cfg.Engagement.BottomCount) {
			g.bottom[id] = true
		}
	}

	homeRot := BuildRotation(home.Roster, home.Team.Strategy, cfg.Lineup)
	awayRot := BuildRotation(away.Roster, away.Team.Strategy, cfg.Lineup)

	possessions := RandInt(rng, cfg.Pace.Min, cfg.Pace.Max)
	if home.Team.Strategy.Tactic == TacticPace || away.Team.Strategy.Tactic == TacticPace {
		possessions += cfg.Pace.TacticBonus
	}

	e := cfg.Engagement
	homePts, awayPts := 0, 0
	comebackHome, comebackAway := false, false
	for tick := 0; tick < possessions; tick++ {
		diff := homePts - awayPts
		if diff < -e.ComebackEnterDiff {
			comebackHome = true
		} else if diff >= -e.ComebackExitDiff {
			comebackHome = false
		}
		if diff > e.ComebackEnterDiff {
			comebackAway = true
		} else if diff <= e.ComebackExitDiff {
			comebackAway = false
		}
		homeUnit := homeRot.Unit(tick, possessions)
		awayUnit := awayRot.Unit(tick, possessions)
		homePts += g.possession(home.Team, homeUnit, awayUnit, comebackHome)
		awayPts += g.possession(away.Team, awayUnit, homeUnit, comebackAway)
	}

	overtimes := 0
	for homePts == awayPts {
		overtimes++
		homeUnit, awayUnit := homeRot.Closing(), awayRot.Closing()
		homePts += g.possession(home.Team, homeUnit, awayUnit, false)
		awayPts += g.possession(away.Team, awayUnit, homeUnit, false)
	}

	res := &GameResult{
		HomeID:    home.Team.ID,
		AwayID:    away.Team.ID,
		HomeScore: homePts,
		AwayScore: awayPts,
		Overtimes: overtimes,
		HomeBox:   g.boxScore(home.Roster),
		AwayBox:   g.boxScore(away.Roster),
	}
	winner := home
	res.WinnerID, res.LoserID = home.Team.ID, away.Team.ID
	if awayPts > homePts {
		winner = away
		res.WinnerID, res.LoserID = away.Team.ID, home.Team.ID
	}
	best := math.MinInt
	for _, p := range winner.Roster {
		if eff := g.box[p.ID].GameEfficiency(); eff > best {
			best = eff
			res.MVPID, res.MVPName = p.ID, p.Name()
		}
	}
	return res, nil
}

func (g *gameSim) boxScore(roster []*Player) []BoxLine {
	lines := make([]BoxLine, 0, len(roster))
	for _, p := range roster {
		lines = append(lines, BoxLine{PlayerID: p.ID, Name: p.Name(), StatLine: *g.box[p.ID]})
	}
	return lines
}

// ApplyResult records a simulated game: marks it played, folds every box line
// into the matching player's season stats and updates both teams' records.
// Box lines for players no longer in the league are skipped.
func (s *LeagueState) ApplyResult(game *Game, res *GameResult) {
	res.GameID = game.ID
	game.Played = true
	game.HomeScore = res.HomeScore
	game.AwayScore = res.AwayScore
	game.Result = res

	for _, line := range res.Lines() {
		if p := s.Player(line.PlayerID); p != nil {
			p.Stats.Add(line.StatLine)
		}
	}
	if w := s.Team(res.WinnerID); w != nil {
		w.Wins++
	}
	if l := s.Team(res.LoserID); l != nil {
		l.Losses++
	}
}
