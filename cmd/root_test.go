package cmd

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/league"
	"github.com/hoopsim/hoopsim/sim/trace"
)

func newTestEngine(t *testing.T, reg prometheus.Registerer) *league.Engine {
	t.Helper()
	cfg := sim.DefaultConfig()
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(7)).ForSubsystem(sim.SubsystemBootstrap)
	rec, err := league.NewRecorder(reg)
	require.NoError(t, err)
	return league.New(league.NewLeague(cfg, 4, "T01", rng), cfg, league.Options{
		Seed:    7,
		Trace:   trace.TraceConfig{Level: trace.TraceLevelTransactions},
		Metrics: rec,
	})
}

func TestRunOutput_SeasonAndSummary(t *testing.T) {
	// GIVEN a season played to completion
	reg := prometheus.NewRegistry()
	e := newTestEngine(t, reg)
	out, res := e.PlaySeason()
	require.True(t, res.OK, res.Message)

	// WHEN the season and the run summary are printed
	var buf bytes.Buffer
	printSeason(&buf, e.State(), out)
	printRunSummary(&buf, e, reg, 0)
	output := buf.String()

	// THEN standings, awards, totals and metrics all appear
	assert.Contains(t, output, "=== Season 2025 ===")
	assert.Contains(t, output, "Champion             : "+out.Awards.Champion)
	assert.Contains(t, output, " *\n", "user team is marked")
	assert.Contains(t, output, "=== League Summary ===")
	assert.Contains(t, output, "GM score")
	assert.Contains(t, output, "=== Metrics ===")
	assert.Contains(t, output, "hoopsim_games_simulated_total")
	assert.Contains(t, output, "hoopsim_game_points")
}

func TestReadySeason_FromEveryPhase(t *testing.T) {
	e := newTestEngine(t, nil)
	require.Equal(t, sim.PhaseRegularSeason, e.Phase())
	assert.True(t, readySeason(e).OK, "a scheduled season needs nothing")

	_, res := e.PlaySeason()
	require.True(t, res.OK)
	require.Equal(t, sim.PhaseSeasonComplete, e.Phase())

	res = readySeason(e)
	require.True(t, res.OK, res.Message)
	assert.Equal(t, sim.PhaseRegularSeason, e.Phase())
	assert.Equal(t, 2026, e.State().SeasonYear)
}

func TestFillUserRoster(t *testing.T) {
	tests := []struct {
		name string
		keep int
	}{
		{name: "one player left", keep: 1},
		{name: "one short of the minimum", keep: 7},
		{name: "already at the minimum", keep: 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN a user team trimmed to a few players with its releases in free agency
			e := newTestEngine(t, nil)
			s := e.State()
			for _, p := range s.Roster("T01")[tc.keep:] {
				require.True(t, e.ReleasePlayer(p.ID).OK)
			}
			want := max(tc.keep, e.Config().Season.UserMinRoster)

			// WHEN the roster is filled
			fillUserRoster(e)

			// THEN the team meets its minimum without breaking the cap
			assert.Len(t, s.Roster("T01"), want)
			assert.LessOrEqual(t, s.Payroll("T01"), s.SalaryCap)
		})
	}
}

func TestFillUserRoster_AllAILeague_DoesNothing(t *testing.T) {
	e := newTestEngine(t, nil)
	e.State().UserTeamID = ""
	before := len(e.State().FreeAgents())

	fillUserRoster(e)

	assert.Len(t, e.State().FreeAgents(), before)
}

func TestPrintBoxScore(t *testing.T) {
	e := newTestEngine(t, nil)
	res, out := e.Exhibition("T01", "T02")
	require.True(t, out.OK, out.Message)

	var buf bytes.Buffer
	printBoxScore(&buf, e.State(), res)

	assert.Contains(t, buf.String(), "PLAYER")
	assert.Contains(t, buf.String(), e.State().TeamName("T02"))
}

func TestFormatCounts_Sorted(t *testing.T) {
	assert.Equal(t, "", formatCounts(nil))
	assert.Equal(t, "(dump=1, fill=3)", formatCounts(map[string]int{"fill": 3, "dump": 1}))
}
