package sim

import (
	"strconv"
	"strings"
)

// PlayoffGamePrefix marks playoff game IDs ("P_{series}_G{n}").
const PlayoffGamePrefix = "P_"

// Game is one scheduled matchup. It is mutated exactly once, when simulated.
type Game struct {
	ID        string      `json:"id"`
	Day       int         `json:"day"`
	HomeID    string      `json:"home_team_id"`
	AwayID    string      `json:"away_team_id"`
	Played    bool        `json:"played"`
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
	Result    *GameResult `json:"result,omitempty"`
}

// IsPlayoff reports whether the game belongs to a playoff series.
func (g *Game) IsPlayoff() bool { return strings.HasPrefix(g.ID, PlayoffGamePrefix) }

// SeriesID extracts the series ID from a playoff game ID, "" otherwise.
func (g *Game) SeriesID() string {
	if !g.IsPlayoff() {
		return ""
	}
	rest := strings.TrimPrefix(g.ID, PlayoffGamePrefix)
	if i := strings.LastIndex(rest, "_G"); i > 0 {
		return rest[:i]
	}
	return ""
}

// PlayoffGameID builds the ID of game n of a series.
func PlayoffGameID(seriesID string, n int) string {
	return PlayoffGamePrefix + seriesID + "_G" + itoa(n)
}

// RegularGameID builds the ID of the n-th regular-season game.
func RegularGameID(n int) string { return "G" + itoa(n) }

// Involves reports whether teamID plays in the game.
func (g *Game) Involves(teamID string) bool { return g.HomeID == teamID || g.AwayID == teamID }

// GameResult is the outcome of SimulateGame.
type GameResult struct {
	GameID    string    `json:"game_id,omitempty"`
	HomeID    string    `json:"home_team_id"`
	AwayID    string    `json:"away_team_id"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	WinnerID  string    `json:"winner_id"`
	LoserID   string    `json:"loser_id"`
	MVPID     string    `json:"mvp_id"`
	MVPName   string    `json:"mvp"`
	Overtimes int       `json:"overtimes"`
	HomeBox   []BoxLine `json:"home_box_score"`
	AwayBox   []BoxLine `json:"away_box_score"`
}

// Lines returns both box scores, home first.
func (r *GameResult) Lines() []BoxLine {
	out := make([]BoxLine, 0, len(r.HomeBox)+len(r.AwayBox))
	out = append(out, r.HomeBox...)
	return append(out, r.AwayBox...)
}

// PlayoffSeries is a best-of-seven series. T1 is the higher seed.
type PlayoffSeries struct {
	ID       string `json:"id"`
	Round    int    `json:"round"`
	T1ID     string `json:"t1_id"`
	T2ID     string `json:"t2_id"`
	W1       int    `json:"w1"`
	W2       int    `json:"w2"`
	WinnerID string `json:"winner_id,omitempty"`
}

// Done reports whether a side has clinched.
func (s *PlayoffSeries) Done() bool { return s.WinnerID != "" }

// NextGameNumber is the 1-based number of the next game.
func (s *PlayoffSeries) NextGameNumber() int { return s.W1 + s.W2 + 1 }

// LoserID returns the eliminated side once the series is done.
func (s *PlayoffSeries) LoserID() string {
	switch s.WinnerID {
	case "":
		return ""
	case s.T1ID:
		return s.T2ID
	default:
		return s.T1ID
	}
}

// Has reports whether teamID plays in the series.
func (s *PlayoffSeries) Has(teamID string) bool { return s.T1ID == teamID || s.T2ID == teamID }

func itoa(n int) string { return strconv.Itoa(n) }
