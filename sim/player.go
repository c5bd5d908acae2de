package sim

import (
	"math"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Reserved pseudo-team identifiers.
const (
	FreeAgentTeamID = "T00"
	DraftTeamID     = "DRAFT"
)

// Position is a player's listed position.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists every valid position in lineup order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Bucket groups positions into Guards, Forwards and Centers.
type Bucket int

const (
	Guards Bucket = iota
	Forwards
	Centers
)

// String returns the one-letter bucket label.
func (b Bucket) String() string {
	switch b {
	case Guards:
		return "G"
	case Centers:
		return "C"
	default:
		return "F"
	}
}

// Bucket returns the position group. Unknown positions count as forwards.
func (p Position) Bucket() Bucket {
	switch p {
	case PointGuard, ShootingGuard, "G":
		return Guards
	case Center:
		return Centers
	default:
		return Forwards
	}
}

// IsGuard reports whether p is PG or SG.
func (p Position) IsGuard() bool { return p == PointGuard || p == ShootingGuard }

// IsBig reports whether p is PF or C.
func (p Position) IsBig() bool { return p == PowerForward || p == Center }

// IsPerimeter reports whether p normally takes three-point volume.
func (p Position) IsPerimeter() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, "G", "F":
		return true
	}
	return false
}

// Attr names one of the eight player attributes.
type Attr int

const (
	AttrInside Attr = iota
	AttrOutside
	AttrRebound
	AttrPassing
	AttrConsistency
	AttrBlock
	AttrSteal
	AttrDefense
)

var attrNames = [...]string{"2pt", "3pt", "rebound", "pass", "consistency", "block", "steal", "def"}

// String returns the serialized attribute key.
func (a Attr) String() string { return attrNames[a] }

// Attributes are the eight bounded player skills (nominal range 0-99).
type Attributes struct {
	Inside      int `json:"2pt"`
	Outside     int `json:"3pt"`
	Rebound     int `json:"rebound"`
	Passing     int `json:"pass"`
	Consistency int `json:"consistency"`
	Block       int `json:"block"`
	Steal       int `json:"steal"`
	Defense     int `json:"def"`
}

// Get returns the value of attribute a.
func (at Attributes) Get(a Attr) int {
	switch a {
	case AttrInside:
		return at.Inside
	case AttrOutside:
		return at.Outside
	case AttrRebound:
		return at.Rebound
	case AttrPassing:
		return at.Passing
	case AttrConsistency:
		return at.Consistency
	case AttrBlock:
		return at.Block
	case AttrSteal:
		return at.Steal
	default:
		return at.Defense
	}
}

func (at *Attributes) set(a Attr, v int) {
	switch a {
	case AttrInside:
		at.Inside = v
	case AttrOutside:
		at.Outside = v
	case AttrRebound:
		at.Rebound = v
	case AttrPassing:
		at.Passing = v
	case AttrConsistency:
		at.Consistency = v
	case AttrBlock:
		at.Block = v
	case AttrSteal:
		at.Steal = v
	default:
		at.Defense = v
	}
}

// Rating computes the overall rating:
//
//	0.32*max(in,out) + 0.08*min(in,out) + 0.40*max(stl,blk,def)
//	+ 0.10*(cons+def)/2 + 0.10*max(reb,pass)
//
// rounded to the nearest integer.
func (at Attributes) Rating() int {
	scoring := float64(max(at.Inside, at.Outside))*0.32 + float64(min(at.Inside, at.Outside))*0.08
	defense := float64(max(at.Steal, at.Block, at.Defense)) * 0.40
	mix := (float64(at.Consistency+at.Defense) / 2) * 0.10
	utility := float64(max(at.Rebound, at.Passing)) * 0.10
	return int(math.Round(scoring + defense + mix + utility))
}

// Negotiation is a player's contract-talk state for the current season.
type Negotiation struct {
	Allowed     bool `json:"allowed"`
	Patience    int  `json:"patience"`
	MaxPatience int  `json:"max_patience"`
}

// DefaultPatience is the base number of rejected offers a player tolerates.
const DefaultPatience = 3

// Player is a rostered, free-agent, draft-class or retired player.
//
// TeamID is written only by LeagueState.MovePlayer. Rating is written only by
// Recompute; every attribute mutation goes through AdjustAttribute or
// SetAttributes, which recompute it.
type Player struct {
	ID            string         `json:"id"`
	RealName      string         `json:"real_name"`
	DisplayName   string         `json:"mask_name"`
	TeamID        string         `json:"team_id"`
	Position      Position       `json:"pos"`
	Number        int            `json:"number"`
	Age           int            `json:"age"`
	Salary        float64        `json:"salary"`
	Attributes    Attributes     `json:"attributes"`
	Rating        int            `json:"ovr"`
	Potential     int            `json:"potential"`
	ContractYears int            `json:"contract_length"`
	Stats         StatLine       `json:"stats"`
	History       []SeasonRecord `json:"history"`
	Scouted       bool           `json:"is_scouted"`
	OffenseStatus int            `json:"offense_status"`
	Tenure        int            `json:"years_on_team"`
	Negotiation   Negotiation    `json:"negotiation"`
	DraftedBy     string         `json:"drafted_by,omitempty"`
}

// NewPlayer builds a player with a computed rating, masked display name and
// default negotiation state.
func NewPlayer(id, name string, pos Position, age int, attrs Attributes) *Player {
	p := &Player{
		ID:            id,
		RealName:      name,
		DisplayName:   MaskName(name),
		Position:      pos,
		Age:           age,
		Attributes:    attrs,
		ContractYears: 1,
		Negotiation:   Negotiation{Allowed: true, Patience: DefaultPatience, MaxPatience: DefaultPatience},
	}
	p.Recompute()
	return p
}

// Recompute refreshes the derived rating from the current attributes.
func (p *Player) Recompute() {
	p.Rating = p.Attributes.Rating()
}

// SetAttributes replaces all attributes and recomputes the rating.
func (p *Player) SetAttributes(at Attributes) {
	p.Attributes = at
	p.Recompute()
}

// AdjustAttribute adds delta to attribute a, clamps the result to [floor, ceil],
// recomputes the rating and returns the applied change.
func (p *Player) AdjustAttribute(a Attr, delta, floor, ceil int) int {
	old := p.Attributes.Get(a)
	v := min(max(old+delta, floor), ceil)
	p.Attributes.set(a, v)
	p.Recompute()
	return v - old
}

// Name returns the display name, falling back to the real name.
func (p *Player) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.RealName
}

// LastSeason returns the most recent archived season, if any.
func (p *Player) LastSeason() (SeasonRecord, bool) {
	if len(p.History) == 0 {
		return SeasonRecord{}, false
	}
	return p.History[len(p.History)-1], true
}

// CareerTotals sums the archived seasons.
func (p *Player) CareerTotals() StatLine {
	var total StatLine
	for _, h := range p.History {
		total.Add(h.StatLine)
	}
	return total
}

// ResetNegotiation re-enables contract talks with patience of at least base.
func (p *Player) ResetNegotiation(base int) {
	p.Negotiation.Allowed = true
	p.Negotiation.MaxPatience = max(p.Negotiation.MaxPatience, base)
	p.Negotiation.Patience = p.Negotiation.MaxPatience
}

// MaskName shortens "First Last" to "F. Last". Names without a space are
// returned unchanged.
func MaskName(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	r, _ := utf8.DecodeRuneInString(fields[0])
	return string(r) + ". " + fields[len(fields)-1]
}

// NormalizeSalary converts raw currency units (above 500) into millions,
// rounded to two decimals. Values at or below 500 are already in millions.
func NormalizeSalary(raw float64) float64 {
	if raw > 500 {
		raw /= 1_000_000
	}
	return math.Round(raw*100) / 100
}

// DerivePotential estimates potential for a player loaded without one:
// younger players get more randomized headroom above their rating. Capped at 99.
func DerivePotential(age, rating int, rng *rand.Rand) int {
	pot := rating
	switch {
	case age < 25:
		pot += RandInt(rng, 5, 15)
	case age < 30:
		pot += RandInt(rng, 0, 5)
	}
	return min(99, pot)
}
