package league

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/schedule"
)

// GM score awards.
const (
	scoreWin          = 10
	scoreSeriesWin    = 50
	scoreTitle        = 1000
	scoreMVP          = 200
	scoreFinalsMVP    = 200
	scoreAchievement  = 100
	scoreHallOfFame   = 500
	scoreLeagueRecord = 50
)

// Achievement identifiers.
const (
	AchFirstWin      = "first_win"
	AchPlayoffBound  = "playoff_bound"
	AchChampion      = "champion"
	AchMVPFinder     = "mvp_finder"
	AchFMVPFinder    = "fmvp_finder"
	AchDynasty       = "dynasty"
	AchUnderdog      = "underdog"
	AchPerfectSeason = "perfect_season"
	AchSniper        = "sniper"
	AchLegendMaker   = "legend_maker"
)

// Achievements describes every unlockable achievement.
var Achievements = map[string]sim.Achievement{
	AchFirstWin:      {Title: "First Blood", Description: "Win your first game."},
	AchPlayoffBound:  {Title: "Playoff Bound", Description: "Win a first-round playoff series."},
	AchChampion:      {Title: "Champion", Description: "Win the league title."},
	AchMVPFinder:     {Title: "MVP Finder", Description: "Have the season MVP on your roster."},
	AchFMVPFinder:    {Title: "Finals Hero", Description: "Have the Finals MVP on your roster."},
	AchDynasty:       {Title: "Dynasty", Description: "Win three titles in a row."},
	AchUnderdog:      {Title: "Underdog", Description: "Win the title as the fourth seed."},
	AchPerfectSeason: {Title: "Near Perfect", Description: "Win the title with fewer than five losses."},
	AchSniper:        {Title: "Sniper", Description: "A player you drafted reaches 90 overall."},
	AchLegendMaker:   {Title: "Legend Maker", Description: "A player retires from your team into the Hall of Fame."},
}

const dynastyLength = 3

// addScore credits the user GM score. The log keeps the newest entry first.
func addScore(s *sim.LeagueState, points int, reason string) {
	s.GMScore += points
	s.GMScoreLog = append([]sim.ScoreEntry{{Date: s.DateStamp(), Points: points, Reason: reason}}, s.GMScoreLog...)
}

// unlock grants an achievement once. Reports whether it was new.
func unlock(s *sim.LeagueState, id string) bool {
	if _, done := s.Achievements[id]; done {
		return false
	}
	a, known := Achievements[id]
	if !known {
		return false
	}
	a.Date = s.DateStamp()
	s.Achievements[id] = a
	addScore(s, scoreAchievement, "Achievement: "+a.Title)
	s.AddNews(fmt.Sprintf("ACHIEVEMENT UNLOCKED: %s", a.Title))
	logrus.Infof("achievement: %s (GM score %s)", a.Title, humanize.Comma(int64(s.GMScore)))
	return true
}

// CheckRecords compares every box-score line of res against the single-game
// league records. A record falls to a strictly greater value. Returns the
// categories that were broken.
func CheckRecords(s *sim.LeagueState, res *sim.GameResult) []string {
	var broken []string
	for _, line := range res.Lines() {
		for _, cat := range sim.RecordCategories {
			v := sim.RecordValue(cat, line.StatLine)
			rec := s.LeagueRecords[cat]
			if v <= rec.Value {
				continue
			}
			teamID := ""
			if p := s.Player(line.PlayerID); p != nil {
				teamID = p.TeamID
			}
			s.LeagueRecords[cat] = sim.LeagueRecord{Value: v, Holder: line.Name, Date: s.DateStamp(), Team: s.TeamName(teamID)}
			s.AddNews(fmt.Sprintf("RECORD: %s sets a new single-game %s record with %d!", line.Name, cat, v))
			if teamID != "" && teamID == s.UserTeamID {
				addScore(s, scoreLeagueRecord, fmt.Sprintf("League record (%s)", cat))
			}
			broken = append(broken, cat)
		}
	}
	return broken
}

// creditGame handles the user-facing bookkeeping of one played game.
func creditGame(s *sim.LeagueState, res *sim.GameResult) {
	if s.UserTeamID == "" || res.WinnerID != s.UserTeamID {
		return
	}
	addScore(s, scoreWin, "Win")
	unlock(s, AchFirstWin)
}

// creditSeries handles a clinched playoff series.
func creditSeries(s *sim.LeagueState, ps *sim.PlayoffSeries) {
	if s.UserTeamID == "" || ps.WinnerID != s.UserTeamID {
		return
	}
	addScore(s, scoreSeriesWin, "Series win "+ps.ID)
	if ps.Round == 1 {
		unlock(s, AchPlayoffBound)
	}
}

// creditChampionship handles the user-facing results of a finished season.
func creditChampionship(s *sim.LeagueState, awards sim.SeasonAwards) {
	user := s.UserTeamID
	if user == "" {
		return
	}
	if awards.MVPID != "" {
		if p := s.Player(awards.MVPID); p != nil && p.TeamID == user {
			addScore(s, scoreMVP, "MVP: "+p.Name())
			unlock(s, AchMVPFinder)
		}
	}
	if awards.FMVPID != "" {
		if p := s.Player(awards.FMVPID); p != nil && p.TeamID == user {
			addScore(s, scoreFinalsMVP, "Finals MVP: "+p.Name())
			unlock(s, AchFMVPFinder)
		}
	}
	if awards.ChampionID != user {
		return
	}
	addScore(s, scoreTitle, fmt.Sprintf("Champions %d", awards.Year))
	unlock(s, AchChampion)
	if schedule.Seed(s, user) == schedule.PlayoffTeams {
		unlock(s, AchUnderdog)
	}
	if t := s.Team(user); t != nil && t.Losses < 5 {
		unlock(s, AchPerfectSeason)
	}
	if consecutiveTitles(s, user) >= dynastyLength {
		unlock(s, AchDynasty)
	}
}

// consecutiveTitles counts the user's unbroken run of titles ending with the
// latest archived season.
func consecutiveTitles(s *sim.LeagueState, teamID string) int {
	run := 0
	for i := len(s.LeagueHistory) - 1; i >= 0; i-- {
		h := s.LeagueHistory[i]
		if h.ChampionID != teamID {
			break
		}
		if i < len(s.LeagueHistory)-1 && s.LeagueHistory[i+1].Year != h.Year+1 {
			break
		}
		run++
	}
	return run
}

// checkSniper unlocks sniper when a player drafted by the user reaches 90.
func checkSniper(s *sim.LeagueState) {
	if s.UserTeamID == "" {
		return
	}
	for _, p := range s.Players {
		if p.DraftedBy == s.UserTeamID && p.Rating >= 90 {
			unlock(s, AchSniper)
			return
		}
	}
}
