package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)

	// WHEN summarized
	summary := Summarize(lt)

	// THEN all counts are zero
	if summary.TotalTransactions != 0 {
		t.Errorf("expected 0 transactions, got %d", summary.TotalTransactions)
	}
	if summary.MostActiveTeam != "" {
		t.Errorf("expected no most active team, got %q", summary.MostActiveTeam)
	}
	if len(summary.TeamActivity) != 0 {
		t.Error("expected empty team activity")
	}
	if Summarize(nil).TotalTransactions != 0 {
		t.Error("expected nil trace to summarize to zero")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with one of each transaction kind and extra signings
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)
	lt.RecordTrade(TradeRecord{Mode: "dump", TeamA: "T01", TeamB: "T02"})
	lt.RecordSigning(SigningRecord{TeamID: "T02", Salary: 2.5, Years: 2, Source: "offseason"})
	lt.RecordSigning(SigningRecord{TeamID: "T03", Salary: 1, Years: 1, Source: "midseason"})
	lt.RecordRelease(ReleaseRecord{TeamID: "T01", Reason: "expired"})
	lt.RecordPick(DraftRecord{TeamID: "T03", Auto: true})
	lt.RecordPick(DraftRecord{TeamID: "T01", Auto: false})

	// WHEN summarized
	summary := Summarize(lt)

	// THEN counts match
	if summary.TotalTransactions != 6 {
		t.Errorf("expected 6 transactions, got %d", summary.TotalTransactions)
	}
	if summary.TradesByMode["dump"] != 1 {
		t.Errorf("expected 1 dump trade, got %d", summary.TradesByMode["dump"])
	}
	if summary.SigningsBySource["offseason"] != 1 || summary.SigningsBySource["midseason"] != 1 {
		t.Errorf("unexpected signing sources %v", summary.SigningsBySource)
	}
	if summary.SalaryCommitted != 6 {
		t.Errorf("expected 6.0 committed, got %.2f", summary.SalaryCommitted)
	}
	if summary.ReleasesByReason["expired"] != 1 {
		t.Errorf("expected 1 expiry, got %d", summary.ReleasesByReason["expired"])
	}
	if summary.DraftPicks != 2 || summary.AutoPicks != 1 {
		t.Errorf("expected 2 picks with 1 auto, got %d/%d", summary.DraftPicks, summary.AutoPicks)
	}
}

func TestSummarize_MostActiveTeam_TiesGoToLowestID(t *testing.T) {
	// GIVEN T01 and T02 with equal activity and T03 with less
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)
	lt.RecordTrade(TradeRecord{Mode: "user", TeamA: "T02", TeamB: "T01"})
	lt.RecordRelease(ReleaseRecord{TeamID: "T02", Reason: "released"})
	lt.RecordRelease(ReleaseRecord{TeamID: "T01", Reason: "released"})
	lt.RecordPick(DraftRecord{TeamID: "T03"})

	// WHEN summarized
	summary := Summarize(lt)

	// THEN the tie resolves to T01
	if summary.TeamActivity["T01"] != 2 || summary.TeamActivity["T02"] != 2 {
		t.Errorf("unexpected activity %v", summary.TeamActivity)
	}
	if summary.MostActiveTeam != "T01" {
		t.Errorf("expected T01, got %s", summary.MostActiveTeam)
	}
}
