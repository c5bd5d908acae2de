package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/league"
	"github.com/hoopsim/hoopsim/sim/persistence"
)

var (
	homeTeam string // Home team ID of the exhibition
	awayTeam string // Away team ID of the exhibition
)

// gameCmd plays one exhibition game and prints its box score
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Play an exhibition game and print the box score",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		cfg := loadConfig(configPath)

		var state *sim.LeagueState
		if leaguePath != "" {
			data, err := os.ReadFile(leaguePath)
			if err != nil {
				logrus.Fatalf("reading league: %v", err)
			}
			if state, _, err = persistence.Decode(data, cfg); err != nil {
				logrus.Fatalf("loading league %s: %v", leaguePath, err)
			}
		} else {
			rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemBootstrap)
			state = league.NewLeague(cfg, 2, "", rng)
		}

		e := league.New(state, cfg, league.Options{Seed: seed})
		res, out := e.Exhibition(homeTeam, awayTeam)
		if !out.OK {
			logrus.Fatalf("%s", out.Message)
		}
		printBoxScore(os.Stdout, e.State(), res)
	},
}

func init() {
	gameCmd.Flags().StringVar(&homeTeam, "home", "T01", "Home team ID")
	gameCmd.Flags().StringVar(&awayTeam, "away", "T02", "Away team ID")
	rootCmd.AddCommand(gameCmd)
}
