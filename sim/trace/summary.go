package trace

import "sort"

// TraceSummary aggregates statistics from a LeagueTrace.
type TraceSummary struct {
	TotalTransactions int
	Trades            int
	TradesByMode      map[string]int
	Signings          int
	SigningsBySource  map[string]int
	SalaryCommitted   float64 // salary*years over all signings
	Releases          int
	ReleasesByReason  map[string]int
	DraftPicks        int
	AutoPicks         int
	TeamActivity      map[string]int // team ID → transactions it took part in
	MostActiveTeam    string
}

// Summarize computes aggregate statistics from a LeagueTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(lt *LeagueTrace) *TraceSummary {
	summary := &TraceSummary{
		TradesByMode:     make(map[string]int),
		SigningsBySource: make(map[string]int),
		ReleasesByReason: make(map[string]int),
		TeamActivity:     make(map[string]int),
	}
	if lt == nil {
		return summary
	}

	summary.Trades = len(lt.Trades)
	for _, r := range lt.Trades {
		summary.TradesByMode[r.Mode]++
		summary.TeamActivity[r.TeamA]++
		summary.TeamActivity[r.TeamB]++
	}

	summary.Signings = len(lt.Signings)
	for _, r := range lt.Signings {
		summary.SigningsBySource[r.Source]++
		summary.SalaryCommitted += r.Salary * float64(r.Years)
		summary.TeamActivity[r.TeamID]++
	}

	summary.Releases = len(lt.Releases)
	for _, r := range lt.Releases {
		summary.ReleasesByReason[r.Reason]++
		summary.TeamActivity[r.TeamID]++
	}

	summary.DraftPicks = len(lt.Picks)
	for _, r := range lt.Picks {
		if r.Auto {
			summary.AutoPicks++
		}
		summary.TeamActivity[r.TeamID]++
	}

	summary.TotalTransactions = summary.Trades + summary.Signings + summary.Releases + summary.DraftPicks

	// Records without a team (expired contracts) count only in the totals.
	delete(summary.TeamActivity, "")

	// Ties go to the lowest team ID for determinism.
	teams := make([]string, 0, len(summary.TeamActivity))
	for id := range summary.TeamActivity {
		teams = append(teams, id)
	}
	sort.Strings(teams)
	best := 0
	for _, id := range teams {
		if n := summary.TeamActivity[id]; n > best {
			best, summary.MostActiveTeam = n, id
		}
	}

	return summary
}
