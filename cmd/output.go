package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/league"
	"github.com/hoopsim/hoopsim/sim/trace"
)

// printSeason writes the final standings and awards of a finished season.
func printSeason(w io.Writer, s *sim.LeagueState, out league.SeasonOutcome) {
	fmt.Fprintf(w, "=== Season %d ===\n", out.Year)
	fmt.Fprintf(w, "Days played          : %d\n", out.Days)
	fmt.Fprintf(w, "Games played         : %s\n", humanize.Comma(int64(out.Games)))
	fmt.Fprintln(w, "Standings:")
	for i, t := range s.Standings() {
		marker := ""
		if t.ID == s.UserTeamID {
			marker = " *"
		}
		fmt.Fprintf(w, "  %2d. %-22s %s  payroll $%.2fM%s\n", i+1, t.Name, t.Record(), s.Payroll(t.ID), marker)
	}
	if a := out.Awards; a != nil {
		fmt.Fprintf(w, "Champion             : %s (%s)\n", a.Champion, a.ChampionRecord)
		fmt.Fprintf(w, "MVP                  : %s\n", a.MVP)
		fmt.Fprintf(w, "Finals MVP           : %s\n", a.FMVP)
		if len(a.AllLeague) > 0 {
			names := make([]string, 0, len(a.AllLeague))
			for _, slot := range a.AllLeague {
				names = append(names, fmt.Sprintf("%s %s", slot.Pos, slot.Name))
			}
			fmt.Fprintf(w, "All-League           : %s\n", strings.Join(names, ", "))
		}
	}
	fmt.Fprintln(w)
}

// printRunSummary writes the league-wide totals of a run.
func printRunSummary(w io.Writer, e *league.Engine, g prometheus.Gatherer, elapsed time.Duration) {
	s := e.State()
	fmt.Fprintln(w, "=== League Summary ===")
	fmt.Fprintf(w, "Season               : %d (%s)\n", s.SeasonYear, e.Phase())
	if s.UserTeamID != "" {
		fmt.Fprintf(w, "GM score             : %s (%d achievements)\n", humanize.Comma(int64(s.GMScore)), len(s.Achievements))
	}
	fmt.Fprintf(w, "Hall of Fame         : %d inductees\n", len(s.HallOfFame))
	fmt.Fprintf(w, "Wall time            : %s\n", elapsed.Round(time.Millisecond))

	r := league.CollectScoringReport(s)
	if r.Games > 0 {
		fmt.Fprintf(w, "Points per team      : mean %.1f, p50 %.1f, p95 %.1f\n", r.TeamPoints.Mean, r.TeamPoints.P50, r.TeamPoints.P95)
		fmt.Fprintf(w, "Winning margin       : mean %.1f, max %.0f\n", r.Margin.Mean, r.Margin.Max)
		fmt.Fprintf(w, "Home win rate        : %.1f%% (%d overtime games)\n", r.HomeWinPct*100, r.Overtimes)
	}

	printTraceSummary(w, trace.Summarize(e.Trace()))
	printMetrics(w, g)
}

func printTraceSummary(w io.Writer, sum *trace.TraceSummary) {
	if sum.TotalTransactions == 0 {
		return
	}
	fmt.Fprintln(w, "=== Transactions ===")
	fmt.Fprintf(w, "Trades               : %d %s\n", sum.Trades, formatCounts(sum.TradesByMode))
	fmt.Fprintf(w, "Signings             : %d %s\n", sum.Signings, formatCounts(sum.SigningsBySource))
	fmt.Fprintf(w, "Salary committed     : $%sM\n", humanize.CommafWithDigits(sum.SalaryCommitted, 2))
	fmt.Fprintf(w, "Releases             : %d %s\n", sum.Releases, formatCounts(sum.ReleasesByReason))
	fmt.Fprintf(w, "Draft picks          : %d (%d automatic)\n", sum.DraftPicks, sum.AutoPicks)
	if sum.MostActiveTeam != "" {
		fmt.Fprintf(w, "Most active team     : %s\n", sum.MostActiveTeam)
	}
}

func formatCounts(m map[string]int) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// printMetrics writes every gathered counter and histogram.
func printMetrics(w io.Writer, g prometheus.Gatherer) {
	if g == nil {
		return
	}
	families, err := g.Gather()
	if err != nil || len(families) == 0 {
		return
	}
	fmt.Fprintln(w, "=== Metrics ===")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%-48s %s\n", name, humanize.Comma(int64(m.GetCounter().GetValue())))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				mean := 0.0
				if h.GetSampleCount() > 0 {
					mean = h.GetSampleSum() / float64(h.GetSampleCount())
				}
				fmt.Fprintf(w, "%-48s count %d, mean %.1f\n", name, h.GetSampleCount(), mean)
			}
		}
	}
}

// printBoxScore writes both box scores of a game.
func printBoxScore(w io.Writer, s *sim.LeagueState, res *sim.GameResult) {
	fmt.Fprintf(w, "%s %d - %d %s", s.TeamName(res.HomeID), res.HomeScore, res.AwayScore, s.TeamName(res.AwayID))
	switch {
	case res.Overtimes == 1:
		fmt.Fprint(w, " (OT)")
	case res.Overtimes > 1:
		fmt.Fprintf(w, " (%dOT)", res.Overtimes)
	}
	fmt.Fprintln(w)
	for _, side := range []struct {
		teamID string
		lines  []sim.BoxLine
	}{{res.HomeID, res.HomeBox}, {res.AwayID, res.AwayBox}} {
		fmt.Fprintf(w, "\n%s\n", s.TeamName(side.teamID))
		fmt.Fprintf(w, "  %-20s %4s %4s %4s %4s %4s %7s %7s\n", "PLAYER", "PTS", "REB", "AST", "STL", "BLK", "FG", "3P")
		for _, l := range side.lines {
			fmt.Fprintf(w, "  %-20s %4d %4d %4d %4d %4d %7s %7s\n", l.Name, l.Points, l.Rebounds, l.Assists, l.Steals, l.Blocks,
				fmt.Sprintf("%d/%d", l.FGM, l.FGA), fmt.Sprintf("%d/%d", l.ThreePM, l.ThreePA))
		}
	}
	if res.MVPName != "" {
		fmt.Fprintf(w, "\nPlayer of the game: %s\n", res.MVPName)
	}
}
