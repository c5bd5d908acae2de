package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim/persistence"
)

var deleteSlot string // Slot to delete before listing

// slotsCmd lists the save slots of a database
var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List (or delete) save slots in a save database",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		loadEnv()
		if dbPath == "" {
			logrus.Fatalf("no save database: pass --db or set %s", envDB)
		}
		store, err := persistence.Open(dbPath, os.Getenv(envSaveKey))
		if err != nil {
			logrus.Fatalf("opening save database: %v", err)
		}
		defer store.Close()

		if deleteSlot != "" {
			if err := store.Delete(deleteSlot); err != nil {
				logrus.Fatalf("%v", err)
			}
			fmt.Printf("Deleted slot %q\n", deleteSlot)
		}
		list, err := store.List()
		if err != nil {
			logrus.Fatalf("listing slots: %v", err)
		}
		if len(list) == 0 {
			fmt.Println("No saves.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tSEASON\tDAY\tTEAM\tSAVED")
		for _, m := range list {
			team := m.UserTeamID
			if team == "" {
				team = "-"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", m.Slot, m.SeasonYear, m.CurrentDay, team, humanize.Time(m.SavedAt))
		}
		w.Flush()
	},
}

func init() {
	slotsCmd.Flags().StringVar(&dbPath, "db", "", "SQLite save database (default $HOOPSIM_DB)")
	slotsCmd.Flags().StringVar(&deleteSlot, "delete", "", "Delete this slot before listing")
	rootCmd.AddCommand(slotsCmd)
}
