package trace

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestLeagueTrace_RecordTrade_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for transactions
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)

	// WHEN a trade record is recorded
	id := lt.RecordTrade(TradeRecord{
		Date:    "S2025 D12",
		Mode:    "user",
		TeamA:   "T01",
		AssetsA: []string{"P1"},
		TeamB:   "T02",
		AssetsB: []string{"P2", "2026 R1"},
	})

	// THEN the trace contains one trade record with an assigned ID
	if len(lt.Trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(lt.Trades))
	}
	if lt.Trades[0].ID != id || id == uuid.Nil {
		t.Errorf("expected assigned ID %s, got %s", id, lt.Trades[0].ID)
	}
	if lt.Trades[0].TeamB != "T02" {
		t.Errorf("expected team T02, got %s", lt.Trades[0].TeamB)
	}
}

func TestLeagueTrace_Disabled_RecordsNothing(t *testing.T) {
	// GIVEN a trace with tracing off
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelNone}, nil)

	// WHEN records are offered
	id := lt.RecordSigning(SigningRecord{PlayerID: "P1", TeamID: "T01"})
	lt.RecordPick(DraftRecord{PlayerID: "R1"})

	// THEN nothing is kept
	if id != uuid.Nil {
		t.Errorf("expected nil ID, got %s", id)
	}
	if len(lt.Signings) != 0 || len(lt.Picks) != 0 {
		t.Error("disabled trace kept records")
	}

	var nilTrace *LeagueTrace
	if nilTrace.Enabled() {
		t.Error("nil trace reported enabled")
	}
	if nilTrace.RecordRelease(ReleaseRecord{}) != uuid.Nil {
		t.Error("nil trace returned an ID")
	}
}

func TestLeagueTrace_SeededIDs_AreReproducible(t *testing.T) {
	// GIVEN two traces fed by identically seeded sources
	a := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, rand.New(rand.NewSource(42)))
	b := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, rand.New(rand.NewSource(42)))

	// WHEN the same records are added
	var idsA, idsB []uuid.UUID
	for i := 0; i < 3; i++ {
		idsA = append(idsA, a.RecordRelease(ReleaseRecord{PlayerID: "P", Reason: "released"}))
		idsB = append(idsB, b.RecordRelease(ReleaseRecord{PlayerID: "P", Reason: "released"}))
	}

	// THEN IDs match pairwise and differ from each other
	for i := range idsA {
		if idsA[i] != idsB[i] {
			t.Errorf("record %d: %s != %s", i, idsA[i], idsB[i])
		}
		if idsA[i].Version() != 4 {
			t.Errorf("record %d: expected version 4, got %d", i, idsA[i].Version())
		}
	}
	if idsA[0] == idsA[1] || idsA[1] == idsA[2] {
		t.Error("expected distinct IDs")
	}
}

func TestLeagueTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)

	// WHEN multiple picks are added
	lt.RecordPick(DraftRecord{Overall: 1, PlayerID: "R001"})
	lt.RecordPick(DraftRecord{Overall: 2, PlayerID: "R002"})

	// THEN order is preserved
	if len(lt.Picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(lt.Picks))
	}
	if lt.Picks[0].PlayerID != "R001" || lt.Picks[1].PlayerID != "R002" {
		t.Error("pick order not preserved")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"transactions", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

func TestLeagueTrace_Rewind_DropsLaterRecords(t *testing.T) {
	// GIVEN a trace with one signing before a mark and more records after it
	lt := NewLeagueTrace(TraceConfig{Level: TraceLevelTransactions}, nil)
	lt.RecordSigning(SigningRecord{PlayerID: "P1"})
	m := lt.Mark()
	lt.RecordSigning(SigningRecord{PlayerID: "P2"})
	lt.RecordTrade(TradeRecord{Mode: "user"})

	// WHEN rewound to the mark
	lt.Rewind(m)

	// THEN only the first signing remains
	if len(lt.Signings) != 1 || lt.Signings[0].PlayerID != "P1" {
		t.Errorf("expected only P1 to remain, got %v", lt.Signings)
	}
	if len(lt.Trades) != 0 {
		t.Errorf("expected no trades, got %d", len(lt.Trades))
	}
}
