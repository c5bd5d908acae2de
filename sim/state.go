package sim

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// SnapshotVersion is written into every saved snapshot.
const SnapshotVersion = "1.0"

// NewsFeedLimit caps the season news feed; the oldest entries are dropped.
const NewsFeedLimit = 50

// Phase is the lifecycle stage derived from a snapshot.
type Phase string

const (
	PhaseRegularSeason  Phase = "regular_season"
	PhasePlayoffs       Phase = "playoffs"
	PhaseSeasonComplete Phase = "season_complete"
	PhaseOffseason      Phase = "offseason"
	PhaseDraft          Phase = "draft"
)

// LeagueState is the complete mutable league snapshot for one save.
// Exactly one owner (the league orchestrator) mutates it; subsystems receive
// it explicitly rather than reaching for global state.
type LeagueState struct {
	Version           string                  `json:"version"`
	CurrentDate       string                  `json:"current_date"`
	CurrentDay        int                     `json:"current_day"`
	SeasonYear        int                     `json:"season_year"`
	SalaryCap         float64                 `json:"salary_cap"`
	UserTeamID        string                  `json:"user_team_id"`
	Teams             []*Team                 `json:"teams"`
	Players           []*Player               `json:"players"`
	Schedule          []*Game                 `json:"schedule"`
	RegularSeasonDays int                     `json:"regular_season_days"`
	Playoffs          []*PlayoffSeries        `json:"playoff_series"`
	DraftClass        []*Player               `json:"draft_class"`
	IsDraftActive     bool                    `json:"is_draft_active"`
	DraftOrder        []string                `json:"draft_order"`
	DraftPickIndex    int                     `json:"current_draft_pick_index"`
	DraftLog          []DraftLogEntry         `json:"draft_picks"`
	ScoutingPoints    int                     `json:"scouting_points"`
	ProgressionLog    map[string][]string     `json:"progression_log"`
	NewsFeed          []string                `json:"news_feed"`
	GMScore           int                     `json:"gm_score"`
	GMScoreLog        []ScoreEntry            `json:"gm_score_log"`
	Achievements      map[string]Achievement  `json:"achievements"`
	LeagueRecords     map[string]LeagueRecord `json:"league_records"`
	LeagueHistory     []SeasonAwards          `json:"league_history"`
	HallOfFame        []HallOfFameEntry       `json:"hall_of_fame"`
	Retired           []*Player               `json:"retired_players"`
}

// NewLeagueState returns an empty snapshot with documented defaults and the
// free-agent team in place.
func NewLeagueState(seasonYear int, startDate string, salaryCap float64) *LeagueState {
	s := &LeagueState{
		Version:        SnapshotVersion,
		CurrentDate:    startDate,
		CurrentDay:     1,
		SeasonYear:     seasonYear,
		SalaryCap:      salaryCap,
		ScoutingPoints: 50,
	}
	s.EnsureCollections()
	s.EnsureFreeAgentTeam()
	return s
}

// EnsureCollections replaces nil maps and slices with empty ones.
func (s *LeagueState) EnsureCollections() {
	if s.Teams == nil {
		s.Teams = []*Team{}
	}
	if s.Players == nil {
		s.Players = []*Player{}
	}
	if s.Schedule == nil {
		s.Schedule = []*Game{}
	}
	if s.Playoffs == nil {
		s.Playoffs = []*PlayoffSeries{}
	}
	if s.DraftClass == nil {
		s.DraftClass = []*Player{}
	}
	if s.DraftOrder == nil {
		s.DraftOrder = []string{}
	}
	if s.DraftLog == nil {
		s.DraftLog = []DraftLogEntry{}
	}
	if s.ProgressionLog == nil {
		s.ProgressionLog = map[string][]string{}
	}
	if s.NewsFeed == nil {
		s.NewsFeed = []string{}
	}
	if s.GMScoreLog == nil {
		s.GMScoreLog = []ScoreEntry{}
	}
	if s.Achievements == nil {
		s.Achievements = map[string]Achievement{}
	}
	if s.LeagueRecords == nil {
		s.LeagueRecords = DefaultLeagueRecords()
	}
	if s.LeagueHistory == nil {
		s.LeagueHistory = []SeasonAwards{}
	}
	if s.HallOfFame == nil {
		s.HallOfFame = []HallOfFameEntry{}
	}
	if s.Retired == nil {
		s.Retired = []*Player{}
	}
}

// EnsureFreeAgentTeam creates the free-agent pseudo-team when absent.
func (s *LeagueState) EnsureFreeAgentTeam() *Team {
	if t := s.Team(FreeAgentTeamID); t != nil {
		return t
	}
	fa := NewTeam(FreeAgentTeamID, "Free Agents")
	fa.Color = "#333333"
	s.Teams = append(s.Teams, fa)
	return fa
}

// Team looks a team up by ID.
func (s *LeagueState) Team(id string) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TeamName returns the team's name, or "N/A" for unknown IDs.
func (s *LeagueState) TeamName(id string) string {
	if t := s.Team(id); t != nil {
		return t.Name
	}
	return "N/A"
}

// ActiveTeams returns every team except the free-agent pseudo-team.
func (s *LeagueState) ActiveTeams() []*Team {
	out := make([]*Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		if t.ID != FreeAgentTeamID {
			out = append(out, t)
		}
	}
	return out
}

// AITeams returns active teams not controlled by the user.
func (s *LeagueState) AITeams() []*Team {
	var out []*Team
	for _, t := range s.ActiveTeams() {
		if t.ID != s.UserTeamID {
			out = append(out, t)
		}
	}
	return out
}

// Player looks up an active or draft-class player by ID.
func (s *LeagueState) Player(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	for _, p := range s.DraftClass {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Roster derives the players of teamID from the active pool, in pool order.
func (s *LeagueState) Roster(teamID string) []*Player {
	var out []*Player
	for _, p := range s.Players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// FreeAgents returns the free-agent pool sorted by rating, best first.
func (s *LeagueState) FreeAgents() []*Player {
	fas := s.Roster(FreeAgentTeamID)
	sort.SliceStable(fas, func(i, j int) bool { return fas[i].Rating > fas[j].Rating })
	return fas
}

// Payroll sums the salaries on a team's roster.
func (s *LeagueState) Payroll(teamID string) float64 { return Payroll(s.Roster(teamID)) }

// AverageRating is the mean rating of a team's roster.
func (s *LeagueState) AverageRating(teamID string) float64 { return AverageRating(s.Roster(teamID)) }

// MovePlayer is the only code path that changes a player's team. Players
// leaving the draft pool move from DraftClass into the active pool, so no
// player is ever held by both.
func (s *LeagueState) MovePlayer(p *Player, teamID string) {
	p.TeamID = teamID
	if teamID == DraftTeamID {
		return
	}
	for i, q := range s.DraftClass {
		if q == p {
			s.DraftClass = append(s.DraftClass[:i], s.DraftClass[i+1:]...)
			break
		}
	}
	for _, q := range s.Players {
		if q == p {
			return
		}
	}
	s.Players = append(s.Players, p)
}

// RetirePlayer removes p from the active pool and archives it.
func (s *LeagueState) RetirePlayer(p *Player) {
	for i, q := range s.Players {
		if q == p {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			break
		}
	}
	s.Retired = append(s.Retired, p)
}

// AddNews appends to the news feed, dropping the oldest entries past the limit.
func (s *LeagueState) AddNews(msg string) {
	s.NewsFeed = append(s.NewsFeed, msg)
	if over := len(s.NewsFeed) - NewsFeedLimit; over > 0 {
		s.NewsFeed = s.NewsFeed[over:]
	}
}

// DateStamp formats the current season and day as "S{year} D{day}".
func (s *LeagueState) DateStamp() string {
	return fmt.Sprintf("S%d D%d", s.SeasonYear, s.CurrentDay)
}

// GamesOn returns the scheduled games of a day.
func (s *LeagueState) GamesOn(day int) []*Game {
	var out []*Game
	for _, g := range s.Schedule {
		if g.Day == day {
			out = append(out, g)
		}
	}
	return out
}

// Game looks up a scheduled game by ID.
func (s *LeagueState) Game(id string) *Game {
	for _, g := range s.Schedule {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// RecalcRegularSeasonDays recomputes the season length from non-playoff games.
func (s *LeagueState) RecalcRegularSeasonDays() {
	last := 0
	for _, g := range s.Schedule {
		if !g.IsPlayoff() && g.Day > last {
			last = g.Day
		}
	}
	s.RegularSeasonDays = last
}

// Series looks up a playoff series by ID.
func (s *LeagueState) Series(id string) *PlayoffSeries {
	for _, ps := range s.Playoffs {
		if ps.ID == id {
			return ps
		}
	}
	return nil
}

// Finals returns the deciding series once it exists.
func (s *LeagueState) Finals() *PlayoffSeries {
	var finals *PlayoffSeries
	for _, ps := range s.Playoffs {
		if finals == nil || ps.Round > finals.Round {
			finals = ps
		}
	}
	if finals == nil || finals.Round < 2 {
		return nil
	}
	return finals
}

// ChampionID returns the winner of the finals, "" until decided.
func (s *LeagueState) ChampionID() string {
	if f := s.Finals(); f != nil {
		return f.WinnerID
	}
	return ""
}

// Phase derives the lifecycle stage from the snapshot.
func (s *LeagueState) Phase() Phase {
	switch {
	case s.IsDraftActive:
		return PhaseDraft
	case len(s.Schedule) == 0:
		return PhaseOffseason
	case s.ChampionID() != "":
		return PhaseSeasonComplete
	case len(s.Playoffs) > 0 || (s.RegularSeasonDays > 0 && s.CurrentDay > s.RegularSeasonDays):
		return PhasePlayoffs
	default:
		return PhaseRegularSeason
	}
}

// Standings returns active teams ordered by wins, then win percentage, then ID.
func (s *LeagueState) Standings() []*Team {
	teams := s.ActiveTeams()
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinPct() != b.WinPct() {
			return a.WinPct() > b.WinPct()
		}
		return a.ID < b.ID
	})
	return teams
}

// Clone returns a deep copy of the snapshot. Nil collections stay nil so a
// clone encodes exactly like its source.
func (s *LeagueState) Clone() *LeagueState {
	out := *s
	out.Teams = clonePtrs(s.Teams, (*Team).clone)
	out.Players = clonePtrs(s.Players, (*Player).clone)
	out.DraftClass = clonePtrs(s.DraftClass, (*Player).clone)
	out.Retired = clonePtrs(s.Retired, (*Player).clone)
	out.Schedule = clonePtrs(s.Schedule, (*Game).clone)
	out.Playoffs = clonePtrs(s.Playoffs, func(ps *PlayoffSeries) *PlayoffSeries { c := *ps; return &c })
	out.DraftOrder = slices.Clone(s.DraftOrder)
	out.DraftLog = slices.Clone(s.DraftLog)
	out.NewsFeed = slices.Clone(s.NewsFeed)
	out.GMScoreLog = slices.Clone(s.GMScoreLog)
	out.HallOfFame = slices.Clone(s.HallOfFame)
	out.Achievements = maps.Clone(s.Achievements)
	out.LeagueRecords = maps.Clone(s.LeagueRecords)
	if s.ProgressionLog != nil {
		out.ProgressionLog = make(map[string][]string, len(s.ProgressionLog))
		for k, v := range s.ProgressionLog {
			out.ProgressionLog[k] = slices.Clone(v)
		}
	}
	if s.LeagueHistory != nil {
		out.LeagueHistory = make([]SeasonAwards, len(s.LeagueHistory))
		for i, a := range s.LeagueHistory {
			a.AllLeague = slices.Clone(a.AllLeague)
			out.LeagueHistory[i] = a
		}
	}
	return &out
}

func clonePtrs[T any](in []*T, cp func(*T) *T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		if v != nil {
			out[i] = cp(v)
		}
	}
	return out
}

func (p *Player) clone() *Player {
	c := *p
	c.History = slices.Clone(p.History)
	return &c
}

func (t *Team) clone() *Team {
	c := *t
	c.DraftPicks = slices.Clone(t.DraftPicks)
	c.Strategy.ScoringOptions = slices.Clone(t.Strategy.ScoringOptions)
	c.Strategy.Rotation = maps.Clone(t.Strategy.Rotation)
	return &c
}

func (g *Game) clone() *Game {
	c := *g
	if g.Result != nil {
		r := *g.Result
		r.HomeBox = slices.Clone(g.Result.HomeBox)
		r.AwayBox = slices.Clone(g.Result.AwayBox)
		c.Result = &r
	}
	return &c
}
