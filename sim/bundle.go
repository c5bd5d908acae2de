package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of SeasonConfig.StartDate.
const DateLayout = "2006-01-02"

// ValidTradeModes is the set of recognized AI trade strategy names.
// Shared by Validate() and economy.NewTradeStrategy().
var ValidTradeModes = map[string]bool{"dump": true, "fill": true, "upgrade": true}

// ValidRotationRoles is the set of recognized rotation role markers.
var ValidRotationRoles = map[RotationRole]bool{RoleStar: true, RoleFavored: true, RoleNormal: true, RoleReduced: true, RoleBenchOnly: true}

// LoadConfig reads a YAML config file and decodes it over DefaultConfig.
// A missing file yields the defaults.
// Unknown keys are rejected so typos surface as errors instead of silently
// keeping a default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes over DefaultConfig and validates the result.
// An empty document yields the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names across all groups.
func (c *Config) Validate() error {
	if err := c.Match.Validate(); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if err := c.Economy.Validate(); err != nil {
		return fmt.Errorf("economy: %w", err)
	}
	if err := c.Progression.Validate(); err != nil {
		return fmt.Errorf("progression: %w", err)
	}
	if err := c.Season.Validate(); err != nil {
		return fmt.Errorf("season: %w", err)
	}
	return nil
}

// Validate checks the match group.
func (m *MatchConfig) Validate() error {
	if m.Pace.Min <= 0 || m.Pace.Max < m.Pace.Min {
		return fmt.Errorf("pace range [%d, %d] is invalid", m.Pace.Min, m.Pace.Max)
	}
	if m.Pace.TacticBonus < 0 {
		return fmt.Errorf("pace tactic_bonus must be non-negative, got %d", m.Pace.TacticBonus)
	}
	if m.Lineup.PlanLength <= 0 {
		return fmt.Errorf("lineup plan_length must be positive, got %d", m.Lineup.PlanLength)
	}
	if m.Lineup.BenchStart < 0 || m.Lineup.BenchEnd < m.Lineup.BenchStart || m.Lineup.BenchEnd > m.Lineup.PlanLength {
		return fmt.Errorf("lineup bench window [%d, %d) does not fit plan of %d", m.Lineup.BenchStart, m.Lineup.BenchEnd, m.Lineup.PlanLength)
	}
	for role := range m.Lineup.RoleAdjust {
		if !ValidRotationRoles[role] {
			return fmt.Errorf("unknown rotation role %q in lineup role_adjust", role)
		}
	}
	for role := range m.Usage.RotationMultipliers {
		if !ValidRotationRoles[role] {
			return fmt.Errorf("unknown rotation role %q in usage rotation_multipliers", role)
		}
	}
	for role := range m.Engagement.FavoriteAdjust {
		if !ValidRotationRoles[role] {
			return fmt.Errorf("unknown rotation role %q in engagement favorite_adjust", role)
		}
	}
	if m.Usage.AttributeExponent <= 0 {
		return fmt.Errorf("usage attribute_exponent must be positive, got %f", m.Usage.AttributeExponent)
	}
	for i := 1; i < len(m.Usage.FatigueTiers); i++ {
		if m.Usage.FatigueTiers[i].Attempts > m.Usage.FatigueTiers[i-1].Attempts {
			return fmt.Errorf("usage fatigue_tiers must be ordered by descending attempts")
		}
	}
	if m.Defense.TurnoverDivisor <= 0 || m.Defense.StealDivisor <= 0 || m.Defense.BlockDivisor <= 0 {
		return fmt.Errorf("defense divisors must be positive")
	}
	if m.Shooting.AttributeImpactDivisor <= 0 {
		return fmt.Errorf("shooting attribute_impact_divisor must be positive")
	}
	if m.Shooting.VarianceHigh < m.Shooting.VarianceLow {
		return fmt.Errorf("shooting variance range [%f, %f] is invalid", m.Shooting.VarianceLow, m.Shooting.VarianceHigh)
	}
	if m.Playmaking.AssistDivisor <= 0 {
		return fmt.Errorf("playmaking assist_divisor must be positive")
	}
	if m.Engagement.ComebackExitDiff > m.Engagement.ComebackEnterDiff {
		return fmt.Errorf("engagement comeback exit deficit %d exceeds enter deficit %d",
			m.Engagement.ComebackExitDiff, m.Engagement.ComebackEnterDiff)
	}
	for _, p := range []float64{m.Shooting.AndOneChance, m.Defense.StealShareOfTurnovers} {
		if p < 0 || p > 1 {
			return fmt.Errorf("probability %f out of [0, 1]", p)
		}
	}
	return nil
}

// Validate checks the economy group.
func (e *EconomyConfig) Validate() error {
	if e.SalaryCap <= 0 {
		return fmt.Errorf("salary_cap must be positive, got %f", e.SalaryCap)
	}
	if e.MinSalary <= 0 || e.MinSalary > e.MaxMarketValue {
		return fmt.Errorf("min_salary %f must be in (0, max_market_value]", e.MinSalary)
	}
	if e.TradeSalaryTolerance < 0 {
		return fmt.Errorf("trade_salary_tolerance must be non-negative, got %f", e.TradeSalaryTolerance)
	}
	if e.RosterPanic > e.RosterTarget {
		return fmt.Errorf("roster_panic %d exceeds roster_target %d", e.RosterPanic, e.RosterTarget)
	}
	for mode, w := range e.TradeModeWeights {
		if !ValidTradeModes[mode] {
			return fmt.Errorf("unknown trade mode %q", mode)
		}
		if w < 0 {
			return fmt.Errorf("trade mode %q weight must be non-negative, got %d", mode, w)
		}
	}
	for _, p := range []float64{e.MidseasonSignChance, e.StarHuntChance, e.AITradeChance, e.AITradeDeadlineChance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("probability %f out of [0, 1]", p)
		}
	}
	return nil
}

// Validate checks the progression group.
func (p *ProgressionConfig) Validate() error {
	if p.RetirementAge <= 0 {
		return fmt.Errorf("retirement_age must be positive, got %d", p.RetirementAge)
	}
	if p.AttributeFloor < 0 || p.AttributeCap <= p.AttributeFloor {
		return fmt.Errorf("attribute bounds [%d, %d] are invalid", p.AttributeFloor, p.AttributeCap)
	}
	if p.TierMinGames < 0 || p.STierSize < 0 || p.ATierSize < 0 {
		return fmt.Errorf("tier settings must be non-negative")
	}
	if p.MaxApplyAttempts <= 0 {
		return fmt.Errorf("max_apply_attempts must be positive, got %d", p.MaxApplyAttempts)
	}
	return nil
}

// Validate checks the season group.
func (s *SeasonConfig) Validate() error {
	if _, err := time.Parse(DateLayout, s.StartDate); err != nil {
		return fmt.Errorf("start_date %q: %w", s.StartDate, err)
	}
	if s.RoundRobinCycles <= 0 {
		return fmt.Errorf("round_robin_cycles must be positive, got %d", s.RoundRobinCycles)
	}
	if s.SeriesWins <= 0 {
		return fmt.Errorf("series_wins must be positive, got %d", s.SeriesWins)
	}
	if s.ScoutCost <= 0 {
		return fmt.Errorf("scout_cost must be positive, got %d", s.ScoutCost)
	}
	if s.MinRoster < 1 {
		return fmt.Errorf("min_roster must be at least 1, got %d", s.MinRoster)
	}
	if s.UserMinRoster < s.MinRoster {
		return fmt.Errorf("user_min_roster %d is below min_roster %d", s.UserMinRoster, s.MinRoster)
	}
	return nil
}
