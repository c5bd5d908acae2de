package schedule

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// PlayoffTeams is the number of seeds in the bracket.
const PlayoffTeams = 4

// Series identifiers.
const (
	SemiFinalA = "S1" // 1 vs 4
	SemiFinalB = "S2" // 2 vs 3
	FinalID    = "F1"
)

// ErrNotEnoughTeams is returned when fewer than PlayoffTeams teams exist.
var ErrNotEnoughTeams = errors.New("not enough teams for playoffs")

// homePattern gives the higher seed home court in games 1, 2, 5 and 7.
var homePattern = [...]bool{true, true, false, false, true, false, true}

// HomeAway returns the home and away team of game n (1-based) of a series.
func HomeAway(ps *sim.PlayoffSeries, n int) (home, away string) {
	if homePattern[(n-1)%len(homePattern)] {
		return ps.T1ID, ps.T2ID
	}
	return ps.T2ID, ps.T1ID
}

// Start seeds the top four teams of the standings into the semifinals and
// schedules game 1 of each on the current day.
func Start(s *sim.LeagueState) error {
	standings := s.Standings()
	if len(standings) < PlayoffTeams {
		return fmt.Errorf("%d teams: %w", len(standings), ErrNotEnoughTeams)
	}
	seeds := standings[:PlayoffTeams]
	s.Playoffs = []*sim.PlayoffSeries{
		{ID: SemiFinalA, Round: 1, T1ID: seeds[0].ID, T2ID: seeds[3].ID},
		{ID: SemiFinalB, Round: 1, T1ID: seeds[1].ID, T2ID: seeds[2].ID},
	}
	logrus.Infof("playoffs: %s vs %s, %s vs %s", seeds[0].Name, seeds[3].Name, seeds[1].Name, seeds[2].Name)
	ScheduleNext(s)
	return nil
}

// ScheduleNext adds the next game of every unfinished series to the current
// day. A series whose next game is already scheduled is skipped.
func ScheduleNext(s *sim.LeagueState) []*sim.Game {
	var added []*sim.Game
	for _, ps := range s.Playoffs {
		if ps.Done() {
			continue
		}
		n := ps.NextGameNumber()
		id := sim.PlayoffGameID(ps.ID, n)
		if s.Game(id) != nil {
			continue
		}
		home, away := HomeAway(ps, n)
		g := &sim.Game{ID: id, Day: s.CurrentDay, HomeID: home, AwayID: away}
		s.Schedule = append(s.Schedule, g)
		added = append(added, g)
	}
	if len(added) > 0 {
		logrus.Debugf("playoffs: scheduled %d games for day %d", len(added), s.CurrentDay)
	}
	return added
}

// Outcome reports what a playoff result changed in the bracket.
type Outcome struct {
	Series     *sim.PlayoffSeries
	Clinched   bool   // the series was decided by this game
	NewRound   bool   // the finals were created
	ChampionID string // set once the finals are decided
}

// Record attributes a played playoff game to its series by game ID and
// advances the bracket. Regular-season games and games of unknown or finished
// series are ignored.
func Record(s *sim.LeagueState, g *sim.Game, winsNeeded int) Outcome {
	var out Outcome
	if !g.Played || g.Result == nil {
		return out
	}
	ps := s.Series(g.SeriesID())
	if ps == nil || ps.Done() {
		return out
	}
	out.Series = ps
	switch g.Result.WinnerID {
	case ps.T1ID:
		ps.W1++
	case ps.T2ID:
		ps.W2++
	default:
		return out
	}
	switch {
	case ps.W1 >= winsNeeded:
		ps.WinnerID = ps.T1ID
	case ps.W2 >= winsNeeded:
		ps.WinnerID = ps.T2ID
	default:
		return out
	}
	out.Clinched = true
	logrus.Infof("playoffs: %s wins series %s (%d-%d)", s.TeamName(ps.WinnerID), ps.ID, ps.W1, ps.W2)

	round := currentRound(s)
	if !roundComplete(s, round) {
		return out
	}
	switch round {
	case 1:
		winners := roundWinners(s, 1)
		if len(winners) != 2 {
			logrus.Errorf("playoffs: round 1 produced %d winners", len(winners))
			return out
		}
		t1, t2 := winners[0], winners[1]
		if Seed(s, t2) < Seed(s, t1) {
			t1, t2 = t2, t1
		}
		s.Playoffs = append(s.Playoffs, &sim.PlayoffSeries{ID: FinalID, Round: 2, T1ID: t1, T2ID: t2})
		out.NewRound = true
		logrus.Infof("playoffs: finals set, %s vs %s", s.TeamName(t1), s.TeamName(t2))
	default:
		out.ChampionID = ps.WinnerID
		logrus.Infof("playoffs: %s are champions", s.TeamName(ps.WinnerID))
	}
	return out
}

// Seed returns a team's 1-based playoff seed derived from the semifinal
// pairings, or 0 when it did not qualify.
func Seed(s *sim.LeagueState, teamID string) int {
	for _, ps := range s.Playoffs {
		if ps.Round != 1 {
			continue
		}
		switch {
		case ps.ID == SemiFinalA && ps.T1ID == teamID:
			return 1
		case ps.ID == SemiFinalA && ps.T2ID == teamID:
			return 4
		case ps.ID == SemiFinalB && ps.T1ID == teamID:
			return 2
		case ps.ID == SemiFinalB && ps.T2ID == teamID:
			return 3
		}
	}
	return 0
}

func currentRound(s *sim.LeagueState) int {
	r := 0
	for _, ps := range s.Playoffs {
		r = max(r, ps.Round)
	}
	return r
}

func roundComplete(s *sim.LeagueState, round int) bool {
	for _, ps := range s.Playoffs {
		if ps.Round == round && !ps.Done() {
			return false
		}
	}
	return true
}

func roundWinners(s *sim.LeagueState, round int) []string {
	var out []string
	for _, ps := range s.Playoffs {
		if ps.Round == round && ps.Done() {
			out = append(out, ps.WinnerID)
		}
	}
	return out
}
