package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hoopsim.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_Validates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverrideKeepsDefaults(t *testing.T) {
	// GIVEN a file overriding only a few keys
	path := writeTempYAML(t, `
match:
  pace:
    min: 95
    max: 105
    tactic_bonus: 8
  usage:
    rotation_multipliers:
      "-": 0.8
economy:
  salary_cap: 90
`)

	// WHEN loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN overridden keys change and everything else keeps its default
	assert.Equal(t, 95, cfg.Match.Pace.Min)
	assert.Equal(t, 105, cfg.Match.Pace.Max)
	assert.Equal(t, 8, cfg.Match.Pace.TacticBonus)
	assert.Equal(t, 90.0, cfg.Economy.SalaryCap)
	assert.Equal(t, 0.45, cfg.Match.Shooting.BasePct)
	assert.Equal(t, 36, cfg.Progression.RetirementAge)
	assert.Equal(t, 0.8, cfg.Match.Usage.RotationMultipliers[RoleReduced])
	assert.Equal(t, 1.5, cfg.Match.Usage.RotationMultipliers[RoleStar], "map entries merge over defaults")
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	path := writeTempYAML(t, `
match:
  pace:
    minimum: 90
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadConfig_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"inverted pace", func(c *Config) { c.Match.Pace.Min, c.Match.Pace.Max = 110, 90 }},
		{"bench window outside plan", func(c *Config) { c.Match.Lineup.BenchEnd = 150 }},
		{"unknown rotation role", func(c *Config) { c.Match.Usage.RotationMultipliers["+++"] = 2 }},
		{"fatigue tiers ascending", func(c *Config) {
			c.Match.Usage.FatigueTiers = []FatigueTier{{Attempts: 10, Multiplier: 0.5}, {Attempts: 20, Multiplier: 0.1}}
		}},
		{"zero assist divisor", func(c *Config) { c.Match.Playmaking.AssistDivisor = 0 }},
		{"comeback exit above enter", func(c *Config) { c.Match.Engagement.ComebackExitDiff = 30 }},
		{"negative cap", func(c *Config) { c.Economy.SalaryCap = -1 }},
		{"unknown trade mode", func(c *Config) { c.Economy.TradeModeWeights["swap"] = 10 }},
		{"probability above one", func(c *Config) { c.Economy.AITradeChance = 1.5 }},
		{"inverted attribute bounds", func(c *Config) { c.Progression.AttributeCap = 10 }},
		{"bad start date", func(c *Config) { c.Season.StartDate = "October 1st" }},
		{"zero series wins", func(c *Config) { c.Season.SeriesWins = 0 }},
		{"zero roster minimum", func(c *Config) { c.Season.MinRoster = 0 }},
		{"user minimum below league minimum", func(c *Config) { c.Season.UserMinRoster = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultConfig_YAMLRoundTrip(t *testing.T) {
	// GIVEN the defaults rendered as YAML (what `hoopsim defaults` prints)
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	// WHEN parsed back with strict field checking
	cfg, err := ParseConfig(data)

	// THEN every key is known and the values are unchanged
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidTradeModes(t *testing.T) {
	for mode := range DefaultEconomyConfig().TradeModeWeights {
		assert.True(t, ValidTradeModes[mode], mode)
	}
}
