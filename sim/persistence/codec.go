// Package persistence stores league snapshots: a JSON codec that fills
// per-field defaults and repairs legacy data on load, AES-GCM sealing, an
// encrypted file store and a SQLite save-slot store.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// Player and team defaults for fields absent from a snapshot.
const (
	defaultPlayerName = "Unknown"
	defaultPlayerAge  = 20
	defaultTeamName   = "Unknown Team"
)

// Encode serializes a snapshot.
func Encode(s *sim.LeagueState) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// rawEntities re-reads the entity arrays so each element can be decoded over
// its own defaults.
type rawEntities struct {
	Players    []json.RawMessage `json:"players"`
	DraftClass []json.RawMessage `json:"draft_class"`
	Retired    []json.RawMessage `json:"retired_players"`
	Teams      []json.RawMessage `json:"teams"`
}

// Decode parses a snapshot. Absent fields take their defaults, then the
// value-level repairs run: salaries are normalized, ratings recomputed, team
// defaults filled and games or series naming unknown teams dropped. Structural
// repairs (potentials, dummy teams, pick inventories, broken drafts) belong to
// the engine bootstrap. Returns a note per repair applied.
func Decode(data []byte, cfg *sim.Config) (*sim.LeagueState, []string, error) {
	if cfg == nil {
		cfg = sim.DefaultConfig()
	}
	s := &sim.LeagueState{
		Version:        sim.SnapshotVersion,
		CurrentDate:    cfg.Season.StartDate,
		CurrentDay:     1,
		SeasonYear:     cfg.Season.StartYear,
		SalaryCap:      cfg.Economy.SalaryCap,
		ScoutingPoints: cfg.Season.ScoutingPoints,
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	var raw rawEntities
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	var err error
	if s.Players, err = decodePlayers(raw.Players); err != nil {
		return nil, nil, err
	}
	if s.DraftClass, err = decodePlayers(raw.DraftClass); err != nil {
		return nil, nil, err
	}
	if s.Retired, err = decodePlayers(raw.Retired); err != nil {
		return nil, nil, err
	}
	if s.Teams, err = decodeTeams(raw.Teams); err != nil {
		return nil, nil, err
	}
	notes := Repair(s)
	for _, n := range notes {
		logrus.Warnf("snapshot repair: %s", n)
	}
	return s, notes, nil
}

func decodePlayers(raw []json.RawMessage) ([]*sim.Player, error) {
	out := make([]*sim.Player, 0, len(raw))
	for i, r := range raw {
		p := &sim.Player{
			RealName:      defaultPlayerName,
			Position:      sim.PointGuard,
			Age:           defaultPlayerAge,
			ContractYears: 1,
			Negotiation:   sim.Negotiation{Allowed: true, Patience: sim.DefaultPatience, MaxPatience: sim.DefaultPatience},
		}
		if err := json.Unmarshal(r, p); err != nil {
			return nil, fmt.Errorf("decoding player %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeTeams(raw []json.RawMessage) ([]*sim.Team, error) {
	out := make([]*sim.Team, 0, len(raw))
	for i, r := range raw {
		t := sim.NewTeam("", defaultTeamName)
		if err := json.Unmarshal(r, t); err != nil {
			return nil, fmt.Errorf("decoding team %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Repair applies the value-level load repairs to s and reports what changed.
func Repair(s *sim.LeagueState) []string {
	var notes []string
	s.EnsureCollections()
	if s.Version == "" {
		s.Version = sim.SnapshotVersion
	}
	if s.Team(sim.FreeAgentTeamID) == nil {
		s.EnsureFreeAgentTeam()
		notes = append(notes, "created the free-agent team")
	}

	salaries, ratings := 0, 0
	for _, pool := range [][]*sim.Player{s.Players, s.DraftClass, s.Retired} {
		for _, p := range pool {
			if n := sim.NormalizeSalary(p.Salary); n != p.Salary {
				p.Salary = n
				salaries++
			}
			old := p.Rating
			p.Recompute()
			if p.Rating != old {
				ratings++
			}
			if p.DisplayName == "" {
				p.DisplayName = sim.MaskName(p.RealName)
			}
		}
	}
	if salaries > 0 {
		notes = append(notes, fmt.Sprintf("normalized %d salaries to millions", salaries))
	}
	if ratings > 0 {
		notes = append(notes, fmt.Sprintf("recomputed %d stale ratings", ratings))
	}

	for _, t := range s.Teams {
		if t.Name == "" {
			t.Name = defaultTeamName
		}
		if t.Color == "" {
			t.Color = sim.DefaultTeamColor
		}
		if t.DraftPicks == nil {
			t.DraftPicks = []sim.DraftPick{}
		}
		if !sim.ValidTactics[t.Strategy.Tactic] {
			t.Strategy.Tactic = sim.TacticBalanced
		}
		if t.Strategy.ScoringOptions == nil {
			t.Strategy.ScoringOptions = []string{}
		}
		if t.Strategy.Rotation == nil {
			t.Strategy.Rotation = map[string]sim.RotationRole{}
		}
	}

	known := func(id string) bool { return s.Team(id) != nil }
	games := s.Schedule[:0]
	for _, g := range s.Schedule {
		if known(g.HomeID) && known(g.AwayID) {
			games = append(games, g)
		}
	}
	if dropped := len(s.Schedule) - len(games); dropped > 0 {
		notes = append(notes, fmt.Sprintf("dropped %d games with unknown teams", dropped))
	}
	s.Schedule = games

	series := s.Playoffs[:0]
	for _, ps := range s.Playoffs {
		if known(ps.T1ID) && known(ps.T2ID) {
			series = append(series, ps)
		}
	}
	if dropped := len(s.Playoffs) - len(series); dropped > 0 {
		notes = append(notes, fmt.Sprintf("dropped %d playoff series with unknown teams", dropped))
	}
	s.Playoffs = series

	s.RecalcRegularSeasonDays()
	return notes
}
