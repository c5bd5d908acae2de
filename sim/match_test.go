package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateGame_NeverTies(t *testing.T) {
	cfg := DefaultMatchConfig()
	rng := newTestRNG(1)
	home, away := testSide("H", 70, 12), testSide("A", 70, 12)
	for i := 0; i < 200; i++ {
		res, err := SimulateGame(home, away, &cfg, rng)
		require.NoError(t, err)
		require.NotEqual(t, res.HomeScore, res.AwayScore, "game %d tied", i)
	}
}

func TestSimulateGame_BoxScoreInvariants(t *testing.T) {
	cfg := DefaultMatchConfig()
	rng := newTestRNG(2)
	home, away := testSide("H", 80, 13), testSide("A", 65, 9)

	for i := 0; i < 50; i++ {
		res, err := SimulateGame(home, away, &cfg, rng)
		require.NoError(t, err)

		homePts, awayPts := 0, 0
		for _, line := range res.HomeBox {
			homePts += line.Points
		}
		for _, line := range res.AwayBox {
			awayPts += line.Points
		}
		assert.Equal(t, res.HomeScore, homePts)
		assert.Equal(t, res.AwayScore, awayPts)
		assert.Len(t, res.HomeBox, 13)
		assert.Len(t, res.AwayBox, 9)

		for _, line := range res.Lines() {
			assert.Equal(t, 1, line.Games, line.PlayerID)
			assert.LessOrEqual(t, line.FGM, line.FGA, line.PlayerID)
			assert.LessOrEqual(t, line.ThreePM, line.ThreePA, line.PlayerID)
			assert.LessOrEqual(t, line.TwoPM, line.TwoPA, line.PlayerID)
			assert.Equal(t, line.FGM, line.TwoPM+line.ThreePM, line.PlayerID)
			assert.Equal(t, line.Rebounds, line.OffRebounds+line.DefRebounds, line.PlayerID)
			assert.GreaterOrEqual(t, line.Points, 2*line.TwoPM+3*line.ThreePM, line.PlayerID)
		}
	}
}

func TestSimulateGame_DoesNotMutateSides(t *testing.T) {
	home, away := testSide("H", 70, 10), testSide("A", 70, 10)
	_, err := SimulateGame(home, away, nil, newTestRNG(3))
	require.NoError(t, err)

	assert.Equal(t, 0, home.Team.Wins+home.Team.Losses)
	for _, p := range append(home.Roster, away.Roster...) {
		assert.Equal(t, StatLine{}, p.Stats)
	}
}

func TestSimulateGame_Deterministic(t *testing.T) {
	home, away := testSide("H", 72, 11), testSide("A", 68, 11)
	r1, err := SimulateGame(home, away, nil, newTestRNG(99))
	require.NoError(t, err)
	r2, err := SimulateGame(home, away, nil, newTestRNG(99))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestSimulateGame_EmptyRoster(t *testing.T) {
	home := testSide("H", 70, 10)
	away := Side{Team: NewTeam("A", "Away")}
	_, err := SimulateGame(home, away, nil, newTestRNG(1))
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestSimulateGame_MVPFromWinningRoster(t *testing.T) {
	home, away := testSide("H", 75, 10), testSide("A", 75, 10)
	res, err := SimulateGame(home, away, nil, newTestRNG(5))
	require.NoError(t, err)

	box := res.HomeBox
	if res.WinnerID == "A" {
		box = res.AwayBox
	}
	best := box[0].GameEfficiency()
	found := false
	for _, line := range box {
		best = max(best, line.GameEfficiency())
		if line.PlayerID == res.MVPID {
			found = true
		}
	}
	require.True(t, found, "MVP must play for the winner")
	for _, line := range box {
		if line.PlayerID == res.MVPID {
			assert.Equal(t, best, line.GameEfficiency())
		}
	}
}

func TestSimulateGame_StrongerTeamWinsMajority(t *testing.T) {
	// GIVEN a 30-point average rating gap
	strong, weak := testSide("S", 85, 12), testSide("W", 55, 12)
	rng := newTestRNG(2024)

	// WHEN they play 100 games with alternating home court
	strongWins := 0
	for i := 0; i < 100; i++ {
		home, away := strong, weak
		if i%2 == 1 {
			home, away = weak, strong
		}
		res, err := SimulateGame(home, away, nil, rng)
		require.NoError(t, err)
		if res.WinnerID == "S" {
			strongWins++
		}
	}

	// THEN the stronger side wins at least 70
	assert.GreaterOrEqual(t, strongWins, 70)
}

func TestApplyResult_ConservesWinsAndLosses(t *testing.T) {
	// GIVEN two teams that only play each other
	a, b := testSide("A", 72, 10), testSide("B", 70, 10)
	s := testLeague(a, b)
	rng := newTestRNG(11)
	const n = 25

	// WHEN n games are simulated and applied
	for i := 0; i < n; i++ {
		g := &Game{ID: RegularGameID(i + 1), Day: i + 1, HomeID: "A", AwayID: "B"}
		s.Schedule = append(s.Schedule, g)
		res, err := SimulateGame(Side{Team: s.Team("A"), Roster: s.Roster("A")}, Side{Team: s.Team("B"), Roster: s.Roster("B")}, nil, rng)
		require.NoError(t, err)
		s.ApplyResult(g, res)
	}

	// THEN counters are conserved and every game is recorded
	ta, tb := s.Team("A"), s.Team("B")
	assert.Equal(t, n, ta.Wins+ta.Losses)
	assert.Equal(t, n, tb.Wins+tb.Losses)
	assert.Equal(t, ta.Wins, tb.Losses)
	assert.Equal(t, ta.Losses, tb.Wins)
	for _, g := range s.Schedule {
		assert.True(t, g.Played)
		assert.Equal(t, g.ID, g.Result.GameID)
	}
	for _, p := range s.Players {
		assert.Equal(t, n, p.Stats.Games)
		assert.LessOrEqual(t, p.Stats.FGM, p.Stats.FGA)
	}
}

func TestBuildRotation(t *testing.T) {
	cfg := DefaultMatchConfig().Lineup
	side := testSide("H", 70, 10)
	// Bump one bench guard with the star role so it starts.
	benchGuard := side.Roster[5] // PG
	side.Team.Strategy.Rotation[benchGuard.ID] = RoleStar

	rot := BuildRotation(side.Roster, side.Team.Strategy, cfg)

	require.Len(t, rot.Starters, UnitSize)
	require.Len(t, rot.Bench, UnitSize)
	assert.Equal(t, benchGuard, rot.Starters[0])
	counts := BucketCounts(rot.Starters)
	assert.Equal(t, 2, counts[Guards])
	assert.Equal(t, 2, counts[Forwards])
	assert.Equal(t, 1, counts[Centers])

	require.Len(t, rot.Plan, cfg.PlanLength)
	assert.Equal(t, rot.Starters, rot.Plan[0])
	assert.Equal(t, rot.Bench, rot.Plan[cfg.BenchStart])
	assert.Equal(t, rot.Starters, rot.Plan[cfg.BenchEnd])
	assert.Equal(t, rot.Starters, rot.Closing())
}

func TestBuildRotation_ShortRoster(t *testing.T) {
	cfg := DefaultMatchConfig().Lineup
	side := testSide("H", 70, 7)

	rot := BuildRotation(side.Roster, side.Team.Strategy, cfg)

	assert.Len(t, rot.Starters, UnitSize)
	assert.Len(t, rot.Bench, 2)
	hybrid := rot.Plan[cfg.BenchStart]
	require.Len(t, hybrid, UnitSize)
	assert.Equal(t, rot.Bench, hybrid[:2])
}

func TestBuildRotation_OnlyStarters(t *testing.T) {
	cfg := DefaultMatchConfig().Lineup
	side := testSide("H", 70, 5)

	rot := BuildRotation(side.Roster, side.Team.Strategy, cfg)

	assert.Empty(t, rot.Bench)
	assert.Equal(t, rot.Starters, rot.Plan[cfg.BenchStart])
}

func TestRotation_UnitScalesToPossessions(t *testing.T) {
	cfg := DefaultMatchConfig().Lineup
	rot := BuildRotation(testSide("H", 70, 10).Roster, DefaultStrategy(), cfg)

	// With 120 possessions the bench window stretches proportionally.
	assert.Equal(t, rot.Starters, rot.Unit(41, 120))
	assert.Equal(t, rot.Bench, rot.Unit(42, 120))
	assert.Equal(t, rot.Bench, rot.Unit(89, 120))
	assert.Equal(t, rot.Starters, rot.Unit(90, 120))
}

func TestFavoriteBoosts(t *testing.T) {
	cfg := DefaultMatchConfig().Engagement
	roster := []*Player{
		testPlayer("a", PointGuard, 80),
		testPlayer("b", ShootingGuard, 78),
		testPlayer("c", SmallForward, 76),
		testPlayer("d", PowerForward, 74),
		testPlayer("e", Center, 72),
		testPlayer("f", PointGuard, 71),
		testPlayer("g", SmallForward, 60),
	}
	strategy := DefaultStrategy()
	strategy.Rotation["f"] = RoleStar    // 71+6 lifts f from rank 5 to rank 2
	strategy.Rotation["a"] = RoleFavored // already first
	strategy.Rotation["g"] = RoleReduced

	boosts := FavoriteBoosts(roster, strategy, cfg)

	assert.InDelta(t, 0.06, boosts["f"], 1e-9) // max(3*0.01, (5-2)*0.02)
	assert.InDelta(t, 0.10, boosts["a"], 1e-9) // top slot (5-0)*0.02
	assert.NotContains(t, boosts, "g")
	assert.NotContains(t, boosts, "b")
}

func TestBottomIDs(t *testing.T) {
	roster := []*Player{testPlayer("a", PointGuard, 80), testPlayer("b", PointGuard, 50), testPlayer("c", PointGuard, 60), testPlayer("d", PointGuard, 40)}
	got := BottomIDs(roster, 2)
	assert.Equal(t, map[string]bool{"d": true, "b": true}, got)
	assert.Len(t, BottomIDs(roster, 10), 4)
}
