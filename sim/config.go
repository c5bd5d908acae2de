package sim

// Config bundles every tunable constant of the engine. Each group maps to a
// top-level section of the YAML config file. Absent sections and keys keep the
// values returned by DefaultConfig.
type Config struct {
	Match       MatchConfig       `yaml:"match"`
	Economy     EconomyConfig     `yaml:"economy"`
	Progression ProgressionConfig `yaml:"progression"`
	Season      SeasonConfig      `yaml:"season"`
}

// MatchConfig groups the game simulator constants.
type MatchConfig struct {
	Pace        PaceConfig        `yaml:"pace"`
	Lineup      LineupConfig      `yaml:"lineup"`
	Usage       UsageConfig       `yaml:"usage"`
	OVR         OVRConfig         `yaml:"ovr_mechanics"`
	Defense     DefenseConfig     `yaml:"defense"`
	Shooting    ShootingConfig    `yaml:"shooting"`
	Consistency ConsistencyConfig `yaml:"consistency"`
	Microwave   MicrowaveConfig   `yaml:"microwave"`
	Playmaking  PlaymakingConfig  `yaml:"playmaking"`
	Rebounding  ReboundingConfig  `yaml:"rebounding"`
	Engagement  EngagementConfig  `yaml:"engagement"`
}

// PaceConfig sets regulation possessions per team.
type PaceConfig struct {
	Min         int `yaml:"min"`          // lower bound of the possession roll (default 100)
	Max         int `yaml:"max"`          // upper bound of the possession roll (default 100)
	TacticBonus int `yaml:"tactic_bonus"` // extra possessions when either side plays Pace (default 0)
}

// LineupConfig controls rotation construction.
type LineupConfig struct {
	RoleAdjust map[RotationRole]int `yaml:"role_adjust"` // rating adjustment per rotation role when ranking
	PlanLength int                  `yaml:"plan_length"` // slots in the rotation plan (default 100)
	BenchStart int                  `yaml:"bench_start"` // first plan slot played by the bench (default 35)
	BenchEnd   int                  `yaml:"bench_end"`   // first plan slot after the bench stint (default 75)
}

// AttributeWeights weight the scoring attributes in usage.
type AttributeWeights struct {
	Inside      float64 `yaml:"2pt"`
	Outside     float64 `yaml:"3pt"`
	Consistency float64 `yaml:"consistency"`
}

// FatigueTier multiplies usage once attempts reach Attempts.
type FatigueTier struct {
	Attempts   int     `yaml:"attempts"`
	Multiplier float64 `yaml:"multiplier"`
}

// UsageConfig controls attacker selection.
type UsageConfig struct {
	AttributeExponent   float64                  `yaml:"attribute_exponent"`
	AttributeWeights    AttributeWeights         `yaml:"attribute_weights"`
	OptionMultipliers   []float64                `yaml:"option_multipliers"`
	RotationMultipliers map[RotationRole]float64 `yaml:"rotation_multipliers"`
	TacticsBonus        float64                  `yaml:"tactics_bonus"`
	FatigueTiers        []FatigueTier            `yaml:"fatigue_tiers"` // highest threshold first
}

// OVRConfig scales every attribute by the player's rating relative to a baseline.
type OVRConfig struct {
	Baseline       int     `yaml:"baseline"`
	FactorPerPoint float64 `yaml:"factor_per_point"`
}

// BlockPositionMultipliers scale block chance by defender position.
type BlockPositionMultipliers struct {
	Big     float64 `yaml:"big"`     // C and PF
	Forward float64 `yaml:"forward"` // SF
	Guard   float64 `yaml:"guard"`
}

// DefenseConfig controls turnovers, steals, blocks and defensive impact.
type DefenseConfig struct {
	BaseTurnoverChance    float64                  `yaml:"base_to_chance"`
	TurnoverDivisor       float64                  `yaml:"to_divisor"`
	StealDivisor          float64                  `yaml:"steal_divisor"`
	StealShareOfTurnovers float64                  `yaml:"steal_ratio_of_to"`
	BaseBlockChance       float64                  `yaml:"base_block_chance"`
	BlockDivisor          float64                  `yaml:"block_divisor"`
	BlockPosition         BlockPositionMultipliers `yaml:"block_position_multipliers"`
	BigBlocksSmallBonus   float64                  `yaml:"big_block_small_bonus"`
	DefenseImpactFactor   float64                  `yaml:"defense_impact_factor"`
	SuperstarRating       int                      `yaml:"superstar_rating"`
	SuperstarResistance   float64                  `yaml:"superstar_resistance"`
	StarRating            int                      `yaml:"star_rating"`
	StarResistance        float64                  `yaml:"star_resistance"`
}

// TacticTendency shifts three-point tendency by team tactic.
type TacticTendency struct {
	Outside float64 `yaml:"outside"`
	Inside  float64 `yaml:"inside"`
	Pace    float64 `yaml:"pace"`
}

// ShootingConfig controls shot selection and make probability.
type ShootingConfig struct {
	ThreePointTendency     float64        `yaml:"three_pt_freq_pg_sg_sf"`
	EliteShooterRating     int            `yaml:"elite_shooter_rating"`
	EliteShooterBoost      float64        `yaml:"elite_shooter_boost"`
	GoodShooterRating      int            `yaml:"good_shooter_rating"`
	GoodShooterBoost       float64        `yaml:"good_shooter_boost"`
	PoorShooterRating      int            `yaml:"poor_shooter_rating"`
	PoorShooterPenalty     float64        `yaml:"poor_shooter_penalty"`
	StretchBigRating       int            `yaml:"stretch_big_rating"`
	StretchBigTendency     float64        `yaml:"stretch_big_tendency"`
	BigTendency            float64        `yaml:"big_tendency"`
	TacticTendency         TacticTendency `yaml:"tactic_tendency"`
	BasePct                float64        `yaml:"base_pct"`
	AttributeImpactDivisor float64        `yaml:"attribute_impact_divisor"`
	VarianceLow            float64        `yaml:"variance_low"`
	VarianceHigh           float64        `yaml:"variance_high"`
	HotHandPerStreak       float64        `yaml:"hot_hand_bonus_per_streak"`
	HotHandCap             float64        `yaml:"hot_hand_cap"`
	ThreePointPenalty      float64        `yaml:"three_pt_penalty"`
	FatigueThreshold       int            `yaml:"fatigue_threshold"`
	FatiguePerShot         float64        `yaml:"fatigue_per_shot"`
	AndOneChance           float64        `yaml:"and_one_chance"`
}

// ConsistencyConfig raises the variance floor with the consistency attribute.
type ConsistencyConfig struct {
	FloorBonus float64 `yaml:"floor_bonus"`
}

// MicrowaveConfig rewards streaky scorers through offense_status.
type MicrowaveConfig struct {
	StreakReq int     `yaml:"streak_req"`
	MaxBonus  float64 `yaml:"max_bonus"`
}

// PlaymakingConfig controls assist attribution.
type PlaymakingConfig struct {
	PasserExponent float64 `yaml:"passer_exponent"`
	AssistDivisor  float64 `yaml:"assist_divisor"`
}

// ReboundPositionMultipliers scale rebound weight by position.
type ReboundPositionMultipliers struct {
	Center  float64 `yaml:"center"`
	Power   float64 `yaml:"power_forward"`
	Forward float64 `yaml:"forward"`
	Guard   float64 `yaml:"guard"`
}

// ReboundingConfig controls the rebound contest.
type ReboundingConfig struct {
	Position      ReboundPositionMultipliers `yaml:"position_multipliers"`
	DefenseWeight float64                    `yaml:"defense_weight"`
}

// EngagementConfig holds mechanics that intentionally bend realism: the
// coach-favorite boost, the bottom-of-roster accuracy floor and the comeback bonus.
type EngagementConfig struct {
	FavoriteAdjust    map[RotationRole]int `yaml:"favorite_adjust"`
	FavoriteRiseStep  float64              `yaml:"favorite_rise_step"`
	FavoriteRiseCap   float64              `yaml:"favorite_rise_cap"`
	FavoriteTopSlots  int                  `yaml:"favorite_top_slots"`
	FavoriteTopStep   float64              `yaml:"favorite_top_step"`
	BottomCount       int                  `yaml:"bottom_count"`
	BottomThreeBonus  float64              `yaml:"bottom_three_bonus"`
	BottomTwoBonus    float64              `yaml:"bottom_two_bonus"`
	ComebackBonus     float64              `yaml:"comeback_bonus"`
	ComebackEnterDiff int                  `yaml:"comeback_enter_deficit"`
	ComebackExitDiff  int                  `yaml:"comeback_exit_deficit"`
}

// EconomyConfig groups roster-economy constants.
type EconomyConfig struct {
	SalaryCap              float64        `yaml:"salary_cap"`
	MinSalary              float64        `yaml:"min_salary"`
	MaxMarketValue         float64        `yaml:"max_market_value"`
	TradeSalaryTolerance   float64        `yaml:"trade_salary_tolerance"`
	TradeSalaryBuffer      float64        `yaml:"trade_salary_buffer"`
	RosterTarget           int            `yaml:"roster_target"`
	RosterPanic            int            `yaml:"roster_panic"`
	RosterReserve          int            `yaml:"roster_reserve"`
	MaxSigningsPerPass     int            `yaml:"max_signings_per_pass"`
	StarRating             int            `yaml:"star_rating"`
	MidseasonRosterLimit   int            `yaml:"midseason_roster_limit"`
	MidseasonSignChance    float64        `yaml:"midseason_sign_chance"`
	StarHuntRosterLimit    int            `yaml:"star_hunt_roster_limit"`
	StarHuntChance         float64        `yaml:"star_hunt_chance"`
	MidseasonMinCapSpace   float64        `yaml:"midseason_min_cap_space"`
	AITradeChance          float64        `yaml:"ai_trade_chance"`
	AITradeDeadlineChance  float64        `yaml:"ai_trade_deadline_chance"`
	AITradeStartDay        int            `yaml:"ai_trade_start_day"`
	AITradeDeadline        float64        `yaml:"ai_trade_deadline"`
	AITradeRushStart       float64        `yaml:"ai_trade_rush_start"`
	TradeModeWeights       map[string]int `yaml:"trade_mode_weights"`
	PotentialTradePairs    int            `yaml:"potential_trade_pairs"`
	PotentialTradeResults  int            `yaml:"potential_trade_results"`
	NegotiationAcceptRatio float64        `yaml:"negotiation_accept_ratio"`
}

// ProgressionConfig groups season-boundary constants.
type ProgressionConfig struct {
	RetirementAge       int     `yaml:"retirement_age"`
	HallOfFameThreshold float64 `yaml:"hall_of_fame_threshold"`
	TierMinGames        int     `yaml:"tier_min_games"`
	STierSize           int     `yaml:"s_tier_size"`
	ATierSize           int     `yaml:"a_tier_size"`
	MaxApplyAttempts    int     `yaml:"max_apply_attempts"`
	BreakthroughChance  float64 `yaml:"breakthrough_chance"`
	BreakthroughAmount  int     `yaml:"breakthrough_amount"`
	DoubleGrowthChance  float64 `yaml:"double_growth_chance"`
	AttributeFloor      int     `yaml:"attribute_floor"`
	AttributeCap        int     `yaml:"attribute_cap"`
	GuardBlockSkip      float64 `yaml:"guard_block_skip"`
	RookieMinClass      int     `yaml:"rookie_min_class"`
	RookiesPerTeam      int     `yaml:"rookies_per_team"`
}

// SeasonConfig groups calendar and bookkeeping constants.
type SeasonConfig struct {
	StartYear        int    `yaml:"start_year"`
	StartDate        string `yaml:"start_date"`
	RoundRobinCycles int    `yaml:"round_robin_cycles"`
	SeriesWins       int    `yaml:"series_wins"`
	ScoutingPoints   int    `yaml:"scouting_points"`
	ScoutCost        int    `yaml:"scout_cost"`
	DummyRosterSize  int    `yaml:"dummy_roster_size"`
	MinRoster        int    `yaml:"min_roster"`      // players a team needs to play a game (default 5)
	UserMinRoster    int    `yaml:"user_min_roster"` // the same floor for the user team (default 8)
}

// DefaultConfig returns the documented defaults for every constant.
func DefaultConfig() *Config {
	return &Config{
		Match:       DefaultMatchConfig(),
		Economy:     DefaultEconomyConfig(),
		Progression: DefaultProgressionConfig(),
		Season:      DefaultSeasonConfig(),
	}
}

// DefaultMatchConfig returns the game simulator defaults.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Pace: PaceConfig{Min: 100, Max: 100, TacticBonus: 0},
		Lineup: LineupConfig{
			RoleAdjust: map[RotationRole]int{RoleStar: 20, RoleFavored: 5, RoleReduced: -5, RoleBenchOnly: -50},
			PlanLength: 100,
			BenchStart: 35,
			BenchEnd:   75,
		},
		Usage: UsageConfig{
			AttributeExponent:   3.0,
			AttributeWeights:    AttributeWeights{Inside: 1.5, Outside: 1.2, Consistency: 0.5},
			OptionMultipliers:   []float64{3.5, 2.2, 1.5},
			RotationMultipliers: map[RotationRole]float64{RoleStar: 1.5, RoleBenchOnly: 0.3},
			TacticsBonus:        1.3,
			FatigueTiers:        []FatigueTier{{Attempts: 40, Multiplier: 0.05}, {Attempts: 30, Multiplier: 0.20}, {Attempts: 22, Multiplier: 0.50}},
		},
		OVR: OVRConfig{Baseline: 85, FactorPerPoint: 0.005},
		Defense: DefenseConfig{
			BaseTurnoverChance:    0.10,
			TurnoverDivisor:       1000,
			StealDivisor:          800,
			StealShareOfTurnovers: 0.7,
			BaseBlockChance:       0.02,
			BlockDivisor:          700,
			BlockPosition:         BlockPositionMultipliers{Big: 1.8, Forward: 1.2, Guard: 0.3},
			BigBlocksSmallBonus:   0.05,
			DefenseImpactFactor:   0.8,
			SuperstarRating:       90,
			SuperstarResistance:   0.5,
			StarRating:            80,
			StarResistance:        0.8,
		},
		Shooting: ShootingConfig{
			ThreePointTendency:     0.4,
			EliteShooterRating:     85,
			EliteShooterBoost:      0.30,
			GoodShooterRating:      75,
			GoodShooterBoost:       0.15,
			PoorShooterRating:      60,
			PoorShooterPenalty:     0.20,
			StretchBigRating:       75,
			StretchBigTendency:     0.25,
			BigTendency:            0.01,
			TacticTendency:         TacticTendency{Outside: 0.15, Inside: -0.15, Pace: 0.05},
			BasePct:                0.45,
			AttributeImpactDivisor: 350,
			VarianceLow:            0.85,
			VarianceHigh:           1.15,
			HotHandPerStreak:       0.05,
			HotHandCap:             0.15,
			ThreePointPenalty:      0.72,
			FatigueThreshold:       25,
			FatiguePerShot:         3.0,
			AndOneChance:           0.2,
		},
		Consistency: ConsistencyConfig{FloorBonus: 0.15},
		Microwave:   MicrowaveConfig{StreakReq: 2, MaxBonus: 5.0},
		Playmaking:  PlaymakingConfig{PasserExponent: 3, AssistDivisor: 15000},
		Rebounding: ReboundingConfig{
			Position:      ReboundPositionMultipliers{Center: 2.5, Power: 2.0, Forward: 1.5, Guard: 0.6},
			DefenseWeight: 3.0,
		},
		Engagement: EngagementConfig{
			FavoriteAdjust:    map[RotationRole]int{RoleStar: 6, RoleFavored: 3},
			FavoriteRiseStep:  0.01,
			FavoriteRiseCap:   0.08,
			FavoriteTopSlots:  5,
			FavoriteTopStep:   0.02,
			BottomCount:       4,
			BottomThreeBonus:  0.10,
			BottomTwoBonus:    0.20,
			ComebackBonus:     0.15,
			ComebackEnterDiff: 20,
			ComebackExitDiff:  10,
		},
	}
}

// DefaultEconomyConfig returns the roster-economy defaults.
func DefaultEconomyConfig() EconomyConfig {
	return EconomyConfig{
		SalaryCap:              70.0,
		MinSalary:              0.5,
		MaxMarketValue:         15.0,
		TradeSalaryTolerance:   0.25,
		TradeSalaryBuffer:      1.0,
		RosterTarget:           13,
		RosterPanic:            10,
		RosterReserve:          10,
		MaxSigningsPerPass:     2,
		StarRating:             80,
		MidseasonRosterLimit:   13,
		MidseasonSignChance:    0.08,
		StarHuntRosterLimit:    15,
		StarHuntChance:         0.80,
		MidseasonMinCapSpace:   1.0,
		AITradeChance:          0.05,
		AITradeDeadlineChance:  0.15,
		AITradeStartDay:        10,
		AITradeDeadline:        0.85,
		AITradeRushStart:       0.6,
		TradeModeWeights:       map[string]int{"dump": 30, "fill": 40, "upgrade": 30},
		PotentialTradePairs:    30,
		PotentialTradeResults:  5,
		NegotiationAcceptRatio: 0.98,
	}
}

// DefaultProgressionConfig returns the career-progression defaults.
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		RetirementAge:       36,
		HallOfFameThreshold: 3000,
		TierMinGames:        10,
		STierSize:           5,
		ATierSize:           10,
		MaxApplyAttempts:    100,
		BreakthroughChance:  0.10,
		BreakthroughAmount:  10,
		DoubleGrowthChance:  0.10,
		AttributeFloor:      25,
		AttributeCap:        99,
		GuardBlockSkip:      0.90,
		RookieMinClass:      20,
		RookiesPerTeam:      4,
	}
}

// DefaultSeasonConfig returns the calendar defaults.
func DefaultSeasonConfig() SeasonConfig {
	return SeasonConfig{
		StartYear:        2025,
		StartDate:        "2025-10-01",
		RoundRobinCycles: 6,
		SeriesWins:       4,
		ScoutingPoints:   50,
		ScoutCost:        10,
		DummyRosterSize:  8,
		MinRoster:        5,
		UserMinRoster:    8,
	}
}
