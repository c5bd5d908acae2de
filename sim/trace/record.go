// Package trace provides transaction recording for league analysis: trades,
// signings, releases and draft picks, each stamped with a unique ID.
// This package has no dependencies on sim/ or its sub-packages; it stores pure data types.
package trace

import "github.com/google/uuid"

// TradeRecord captures a completed trade.
type TradeRecord struct {
	ID      uuid.UUID
	Date    string // "S{year} D{day}"
	Mode    string // "user" or the AI trade mode
	TeamA   string
	AssetsA []string
	TeamB   string
	AssetsB []string
	ValueA  int // trade value TeamA gave up
	ValueB  int // trade value TeamB gave up
}

// SigningRecord captures a contract signed or extended.
type SigningRecord struct {
	ID       uuid.UUID
	Date     string
	PlayerID string
	TeamID   string
	Salary   float64
	Years    int
	Source   string // "user", "midseason", "offseason" or "renewal"
}

// ReleaseRecord captures a player leaving a team for free agency or retirement.
type ReleaseRecord struct {
	ID       uuid.UUID
	Date     string
	PlayerID string
	TeamID   string
	Reason   string // "released", "expired" or "retired"
}

// DraftRecord captures one resolved draft pick.
type DraftRecord struct {
	ID       uuid.UUID
	Date     string
	Overall  int
	Round    int
	Pick     int
	TeamID   string
	PlayerID string
	Auto     bool
}
