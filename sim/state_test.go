package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueState_RosterIsDerivedFromTeamID(t *testing.T) {
	// GIVEN a league with two teams of five
	s := testLeague(testSide("T01", 70, 5), testSide("T02", 60, 5))
	p := s.Roster("T01")[0]

	// WHEN the player is moved to the other team
	s.MovePlayer(p, "T02")

	// THEN both derived rosters reflect the move and the player is held once
	assert.Len(t, s.Roster("T01"), 4)
	assert.Len(t, s.Roster("T02"), 6)
	count := 0
	for _, q := range s.Players {
		if q.ID == p.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLeagueState_MovePlayer_LeavesDraftClass(t *testing.T) {
	s := testLeague(testSide("T01", 70, 5))
	rookie := testPlayer("R1", Center, 55)
	rookie.TeamID = DraftTeamID
	s.DraftClass = append(s.DraftClass, rookie)

	s.MovePlayer(rookie, "T01")

	assert.Empty(t, s.DraftClass)
	assert.Same(t, rookie, s.Player("R1"))
	assert.Len(t, s.Roster("T01"), 6)
}

func TestLeagueState_RetirePlayer(t *testing.T) {
	s := testLeague(testSide("T01", 70, 5))
	p := s.Roster("T01")[2]

	s.RetirePlayer(p)

	assert.Nil(t, s.Player(p.ID))
	assert.Len(t, s.Retired, 1)
	assert.Len(t, s.Roster("T01"), 4)
}

func TestLeagueState_AddNews_Capped(t *testing.T) {
	s := NewLeagueState(2025, "2025-10-01", 70)
	for i := 0; i < NewsFeedLimit+7; i++ {
		s.AddNews(itoa(i))
	}
	require.Len(t, s.NewsFeed, NewsFeedLimit)
	assert.Equal(t, "7", s.NewsFeed[0])
	assert.Equal(t, itoa(NewsFeedLimit+6), s.NewsFeed[NewsFeedLimit-1])
}

func TestLeagueState_Standings(t *testing.T) {
	s := testLeague(testSide("T01", 70, 5), testSide("T02", 70, 5), testSide("T03", 70, 5))
	s.Team("T01").Wins, s.Team("T01").Losses = 3, 5
	s.Team("T02").Wins, s.Team("T02").Losses = 6, 2
	s.Team("T03").Wins, s.Team("T03").Losses = 3, 1

	got := s.Standings()

	require.Len(t, got, 3)
	assert.Equal(t, []string{"T02", "T03", "T01"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestLeagueState_Phase(t *testing.T) {
	s := testLeague(testSide("T01", 70, 5), testSide("T02", 70, 5))
	assert.Equal(t, PhaseOffseason, s.Phase())

	s.Schedule = []*Game{{ID: RegularGameID(1), Day: 1, HomeID: "T01", AwayID: "T02"}}
	s.RecalcRegularSeasonDays()
	assert.Equal(t, PhaseRegularSeason, s.Phase())

	s.CurrentDay = 2
	assert.Equal(t, PhasePlayoffs, s.Phase())

	s.Playoffs = []*PlayoffSeries{{ID: "F1", Round: 2, T1ID: "T01", T2ID: "T02", W1: 4, WinnerID: "T01"}}
	assert.Equal(t, PhaseSeasonComplete, s.Phase())
	assert.Equal(t, "T01", s.ChampionID())

	s.IsDraftActive = true
	assert.Equal(t, PhaseDraft, s.Phase())
}

func TestLeagueState_Clone_IsDeep(t *testing.T) {
	// GIVEN a league with nested per-player, per-team and per-game data
	s := testLeague(testSide("T01", 70, 5), testSide("T02", 70, 5))
	s.Players[0].History = []SeasonRecord{{Year: 2025, TeamID: "T01", StatLine: StatLine{Games: 10}}}
	s.Team("T01").Strategy.Rotation = map[string]RotationRole{s.Players[0].ID: RoleStar}
	s.Schedule = []*Game{{ID: RegularGameID(1), Day: 1, HomeID: "T01", AwayID: "T02", Played: true,
		Result: &GameResult{HomeID: "T01", AwayID: "T02", HomeBox: []BoxLine{{PlayerID: s.Players[0].ID, StatLine: StatLine{Points: 20}}}}}}
	s.ProgressionLog = map[string][]string{s.Players[0].ID: {"+2 inside"}}

	// WHEN the snapshot is cloned
	c := s.Clone()

	// THEN it encodes exactly like its source
	want, err := json.Marshal(s)
	require.NoError(t, err)
	got, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	// AND mutating the clone at any depth leaves the source untouched
	c.Players[0].Attributes.Inside = 1
	c.Players[0].History[0].Games = 99
	c.Teams[1].Wins = 40
	c.Team("T01").Strategy.Rotation[s.Players[0].ID] = RoleBenchOnly
	c.Schedule[0].Result.HomeBox[0].Points = 1
	c.ProgressionLog[s.Players[0].ID][0] = "changed"

	assert.Equal(t, 70, s.Players[0].Attributes.Inside)
	assert.Equal(t, 10, s.Players[0].History[0].Games)
	assert.Equal(t, 0, s.Team("T01").Wins)
	assert.Equal(t, RoleStar, s.Team("T01").Strategy.Rotation[s.Players[0].ID])
	assert.Equal(t, 20, s.Schedule[0].Result.HomeBox[0].Points)
	assert.Equal(t, "+2 inside", s.ProgressionLog[s.Players[0].ID][0])
}

func TestGame_SeriesID(t *testing.T) {
	g := &Game{ID: PlayoffGameID("S2", 5)}
	assert.True(t, g.IsPlayoff())
	assert.Equal(t, "S2", g.SeriesID())
	assert.Equal(t, "P_S2_G5", g.ID)

	reg := &Game{ID: RegularGameID(12)}
	assert.False(t, reg.IsPlayoff())
	assert.Equal(t, "", reg.SeriesID())
}
