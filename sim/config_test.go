package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_DocumentedConstants(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 70.0, cfg.Economy.SalaryCap)
	assert.Equal(t, 0.5, cfg.Economy.MinSalary)
	assert.Equal(t, 15.0, cfg.Economy.MaxMarketValue)
	assert.Equal(t, 36, cfg.Progression.RetirementAge)
	assert.Equal(t, 3000.0, cfg.Progression.HallOfFameThreshold)
	assert.Equal(t, 4, cfg.Season.SeriesWins)
	assert.Equal(t, 6, cfg.Season.RoundRobinCycles)
	assert.Equal(t, []float64{3.5, 2.2, 1.5}, cfg.Match.Usage.OptionMultipliers)
}

func TestDefaultConfig_FatigueTiersDescend(t *testing.T) {
	tiers := DefaultMatchConfig().Usage.FatigueTiers
	require.NotEmpty(t, tiers)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i-1].Attempts, tiers[i].Attempts)
		assert.Less(t, tiers[i-1].Multiplier, tiers[i].Multiplier, "heavier use is penalized harder")
	}
}

func TestDefaultConfig_StartDateParses(t *testing.T) {
	cfg := DefaultSeasonConfig()
	d, err := time.Parse(DateLayout, cfg.StartDate)
	require.NoError(t, err)
	assert.Equal(t, cfg.StartYear, d.Year())
}

func TestDefaultConfig_IndependentMaps(t *testing.T) {
	// GIVEN two default configs
	a, b := DefaultConfig(), DefaultConfig()

	// WHEN one mutates a map-valued setting
	a.Economy.TradeModeWeights["dump"] = 0
	a.Match.Lineup.RoleAdjust[RoleStar] = 0

	// THEN the other is unaffected
	assert.Equal(t, 30, b.Economy.TradeModeWeights["dump"])
	assert.Equal(t, 20, b.Match.Lineup.RoleAdjust[RoleStar])
}
