package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/league"
	"github.com/hoopsim/hoopsim/sim/persistence"
	"github.com/hoopsim/hoopsim/sim/trace"
)

var (
	seed       int64  // Seed for every random stream of the run
	logLevel   string // Log verbosity level
	configPath string // YAML file overriding engine constants
	leaguePath string // JSON league snapshot to start from
	seasons    int    // Number of full seasons to simulate
	teamCount  int    // Teams in a generated league
	userTeam   string // Team controlled by the user, empty for all-AI
	dbPath     string // SQLite save database
	slot       string // Save slot name
	saveDir    string // Directory of sealed save files
	traceLevel string // Transaction trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hoopsim",
	Short: "Basketball league season simulator",
}

// runCmd simulates whole seasons using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate full seasons: games, playoffs, offseason and draft",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		loadEnv()
		if seasons < 1 {
			logrus.Fatalf("--seasons must be at least 1, got %d", seasons)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg := loadConfig(configPath)
		state, store := openLeague(cfg)
		if store != nil {
			defer store.Close()
		}

		reg := prometheus.NewRegistry()
		rec, err := league.NewRecorder(reg)
		if err != nil {
			logrus.Fatalf("registering metrics: %v", err)
		}
		e := league.New(state, cfg, league.Options{
			Seed:    seed,
			Trace:   trace.TraceConfig{Level: trace.TraceLevel(traceLevel)},
			Metrics: rec,
		})
		logrus.Infof("Starting %d season(s) from %d, phase %s, seed %d", seasons, e.State().SeasonYear, e.Phase(), seed)

		startTime := time.Now()
		for i := 0; i < seasons; i++ {
			if res := readySeason(e); !res.OK {
				logrus.Fatalf("preparing season: %s", res.Message)
			}
			fillUserRoster(e)
			out, res := e.PlaySeason()
			if !res.OK {
				logrus.Fatalf("season %d: %s", out.Year, res.Message)
			}
			printSeason(os.Stdout, e.State(), out)
			if i < seasons-1 {
				if res := e.Offseason(); !res.OK {
					logrus.Fatalf("offseason: %s", res.Message)
				}
			}
		}

		printRunSummary(os.Stdout, e, reg, time.Since(startTime))

		if err := saveLeague(e.State(), store); err != nil {
			logrus.Fatalf("saving: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// readySeason moves a league that is between seasons into its next regular
// season.
func readySeason(e *league.Engine) league.Result {
	switch e.Phase() {
	case sim.PhaseSeasonComplete:
		return e.Offseason()
	case sim.PhaseOffseason:
		if res := e.InitDraft(); !res.OK {
			return res
		}
		return e.SimDraft(true)
	case sim.PhaseDraft:
		return e.SimDraft(true)
	}
	return league.Result{OK: true}
}

// fillUserRoster signs free agents at their asking price until the user team
// reaches its roster minimum. Each signing may spend at most an even share of
// the remaining cap space; when nobody fits the share the cheapest free agents
// are tried.
func fillUserRoster(e *league.Engine) {
	s, cfg := e.State(), e.Config()
	teamID := s.UserTeamID
	if s.Team(teamID) == nil {
		return
	}
	need := max(cfg.Season.UserMinRoster, cfg.Season.MinRoster) - len(s.Roster(teamID))
	for need > 0 {
		p := pickFreeAgent(s, teamID, need, cfg.Economy)
		if p == nil {
			logrus.Warnf("%s is %d players short and no free agent fits under the cap", s.TeamName(teamID), need)
			return
		}
		offer := economy.Offer{Amount: economy.Ask(p, 1, cfg.Economy), Years: 1}
		if res := e.SignPlayer(p.ID, teamID, offer); !res.OK {
			logrus.Warnf("signing %s to fill the roster: %s", p.Name(), res.Message)
			return
		}
		logrus.Infof("%s signed %s (OVR %d) for $%.2fM to fill the roster", s.TeamName(teamID), p.Name(), p.Rating, offer.Amount)
		need--
	}
}

// pickFreeAgent returns the best-rated free agent whose one-year ask fits an
// even share of the cap space, else the cheapest one that fits at all.
func pickFreeAgent(s *sim.LeagueState, teamID string, need int, cfg sim.EconomyConfig) *sim.Player {
	space := economy.CapSpace(s, teamID)
	var cheapest *sim.Player
	cheapestAsk := space
	for _, p := range s.FreeAgents() {
		if !p.Negotiation.Allowed || p.Negotiation.Patience <= 0 {
			continue
		}
		ask := economy.Ask(p, 1, cfg)
		if ask <= space/float64(need) {
			return p
		}
		if ask <= cheapestAsk {
			cheapest, cheapestAsk = p, ask
		}
	}
	return cheapest
}

// openLeague picks the starting league: an explicit snapshot file, then a
// saved slot, then a freshly generated league. The slot store stays open for
// the final save when one is configured.
func openLeague(cfg *sim.Config) (*sim.LeagueState, *persistence.SlotStore) {
	var store *persistence.SlotStore
	if dbPath != "" {
		var err error
		store, err = persistence.Open(dbPath, os.Getenv(envSaveKey))
		if err != nil {
			logrus.Fatalf("opening save database: %v", err)
		}
	}

	var state *sim.LeagueState
	switch {
	case leaguePath != "":
		data, err := os.ReadFile(leaguePath)
		if err != nil {
			logrus.Fatalf("reading league: %v", err)
		}
		state, _, err = persistence.Decode(data, cfg)
		if err != nil {
			logrus.Fatalf("loading league %s: %v", leaguePath, err)
		}
	case store != nil:
		state = loadSlot(func() (*sim.LeagueState, []string, error) { return store.Load(slot, cfg) })
	case saveDir != "":
		fs := persistence.NewFileStore(saveDir, os.Getenv(envSaveKey))
		state = loadSlot(func() (*sim.LeagueState, []string, error) { return fs.Load(slot, cfg) })
	}
	if state == nil {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemBootstrap)
		state = league.NewLeague(cfg, teamCount, userTeam, rng)
		logrus.Infof("Generated a %d-team league", len(state.ActiveTeams()))
	}
	if userTeam != "" {
		if t := state.Team(userTeam); t != nil && userTeam != sim.FreeAgentTeamID {
			state.UserTeamID = userTeam
		} else {
			logrus.Warnf("unknown --user-team %q ignored", userTeam)
		}
	}
	return state, store
}

func loadSlot(load func() (*sim.LeagueState, []string, error)) *sim.LeagueState {
	state, _, err := load()
	if errors.Is(err, persistence.ErrNoSave) {
		logrus.Infof("slot %s is empty, starting a new league", slot)
		return nil
	}
	if err != nil {
		logrus.Fatalf("loading slot %s: %v", slot, err)
	}
	logrus.Infof("Loaded slot %s: season %d, day %d", slot, state.SeasonYear, state.CurrentDay)
	return state
}

func saveLeague(s *sim.LeagueState, store *persistence.SlotStore) error {
	if store != nil {
		if err := store.Save(slot, s); err != nil {
			return err
		}
		fmt.Printf("Saved slot %q to %s\n", slot, dbPath)
	}
	if saveDir != "" {
		fs := persistence.NewFileStore(saveDir, os.Getenv(envSaveKey))
		if err := fs.Save(slot, s); err != nil {
			return err
		}
		fmt.Printf("Saved slot %q to %s\n", slot, fs.Path(slot))
	}
	return nil
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding engine constants")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for every random stream")
	rootCmd.PersistentFlags().StringVar(&leaguePath, "league", "", "JSON league snapshot to start from")

	runCmd.Flags().IntVar(&seasons, "seasons", 1, "Number of full seasons to simulate")
	runCmd.Flags().IntVar(&teamCount, "teams", 8, "Teams in a generated league")
	runCmd.Flags().StringVar(&userTeam, "user-team", "", "Team controlled by the user (empty for all-AI)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelTransactions), "Transaction trace level (none, transactions)")

	// Persistence
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite save database (default $HOOPSIM_DB)")
	runCmd.Flags().StringVar(&slot, "slot", "1", "Save slot name")
	runCmd.Flags().StringVar(&saveDir, "save-dir", "", "Directory for sealed save files")

	rootCmd.AddCommand(runCmd)
}
