package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hoopsim/hoopsim/sim"
)

// loadConfig reads the engine constants from path. A missing file yields the
// defaults; an unusable one is reported and replaced by the defaults.
func loadConfig(path string) *sim.Config {
	if path == "" {
		return sim.DefaultConfig()
	}
	cfg, err := sim.LoadConfig(path)
	if err != nil {
		logrus.Warnf("config %s unusable, using defaults: %v", path, err)
		return sim.DefaultConfig()
	}
	return cfg
}

// writeDefaults renders the default constants as YAML.
func writeDefaults(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sim.DefaultConfig()); err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}
	return enc.Close()
}

// defaultsCmd prints the default configuration, a starting point for --config
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default engine configuration as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeDefaults(os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
