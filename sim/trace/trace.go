package trace

import (
	"io"

	"github.com/google/uuid"
)

// TraceLevel controls the verbosity of transaction tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransactions captures every roster transaction.
	TraceLevelTransactions TraceLevel = "transactions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:         true,
	TraceLevelTransactions: true,
	"":                     true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// LeagueTrace collects transaction records during a league run.
//
// Record IDs are version-4 UUIDs read from the ID source, so a seeded source
// yields the same IDs on every run.
type LeagueTrace struct {
	Config   TraceConfig
	Trades   []TradeRecord
	Signings []SigningRecord
	Releases []ReleaseRecord
	Picks    []DraftRecord

	ids io.Reader
}

// NewLeagueTrace creates a LeagueTrace ready for recording. A nil ID source
// falls back to crypto/rand through uuid.New.
func NewLeagueTrace(config TraceConfig, ids io.Reader) *LeagueTrace {
	return &LeagueTrace{
		Config:   config,
		Trades:   make([]TradeRecord, 0),
		Signings: make([]SigningRecord, 0),
		Releases: make([]ReleaseRecord, 0),
		Picks:    make([]DraftRecord, 0),
		ids:      ids,
	}
}

// Enabled reports whether records are kept. Safe on a nil trace.
func (lt *LeagueTrace) Enabled() bool {
	return lt != nil && lt.Config.Level == TraceLevelTransactions
}

func (lt *LeagueTrace) nextID() uuid.UUID {
	if lt.ids == nil {
		return uuid.New()
	}
	id, err := uuid.NewRandomFromReader(lt.ids)
	if err != nil {
		return uuid.New()
	}
	return id
}

// RecordTrade appends a trade record and returns its ID.
func (lt *LeagueTrace) RecordTrade(record TradeRecord) uuid.UUID {
	if !lt.Enabled() {
		return uuid.Nil
	}
	record.ID = lt.nextID()
	lt.Trades = append(lt.Trades, record)
	return record.ID
}

// RecordSigning appends a signing record and returns its ID.
func (lt *LeagueTrace) RecordSigning(record SigningRecord) uuid.UUID {
	if !lt.Enabled() {
		return uuid.Nil
	}
	record.ID = lt.nextID()
	lt.Signings = append(lt.Signings, record)
	return record.ID
}

// RecordRelease appends a release record and returns its ID.
func (lt *LeagueTrace) RecordRelease(record ReleaseRecord) uuid.UUID {
	if !lt.Enabled() {
		return uuid.Nil
	}
	record.ID = lt.nextID()
	lt.Releases = append(lt.Releases, record)
	return record.ID
}

// RecordPick appends a draft record and returns its ID.
func (lt *LeagueTrace) RecordPick(record DraftRecord) uuid.UUID {
	if !lt.Enabled() {
		return uuid.Nil
	}
	record.ID = lt.nextID()
	lt.Picks = append(lt.Picks, record)
	return record.ID
}

// Mark is a position in a trace, used to drop records of an aborted command.
type Mark struct{ trades, signings, releases, picks int }

// Mark returns the current end of every record list.
func (lt *LeagueTrace) Mark() Mark {
	if lt == nil {
		return Mark{}
	}
	return Mark{len(lt.Trades), len(lt.Signings), len(lt.Releases), len(lt.Picks)}
}

// Rewind drops every record added after m.
func (lt *LeagueTrace) Rewind(m Mark) {
	if lt == nil {
		return
	}
	lt.Trades = lt.Trades[:min(m.trades, len(lt.Trades))]
	lt.Signings = lt.Signings[:min(m.signings, len(lt.Signings))]
	lt.Releases = lt.Releases[:min(m.releases, len(lt.Releases))]
	lt.Picks = lt.Picks[:min(m.picks, len(lt.Picks))]
}
