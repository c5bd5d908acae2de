package sim

// Tactic is a team-level offensive bias.
type Tactic string

const (
	TacticBalanced Tactic = "Balanced"
	TacticInside   Tactic = "Inside"
	TacticOutside  Tactic = "Outside"
	TacticPace     Tactic = "Pace"
)

// ValidTactics is the set of recognized tactic names.
var ValidTactics = map[Tactic]bool{TacticBalanced: true, TacticInside: true, TacticOutside: true, TacticPace: true}

// RotationRole is a per-player usage and minutes modifier.
type RotationRole string

const (
	RoleStar      RotationRole = "++"
	RoleFavored   RotationRole = "+"
	RoleNormal    RotationRole = " "
	RoleReduced   RotationRole = "-"
	RoleBenchOnly RotationRole = "--"
)

// IsFavorite reports whether the role is one of the two favored roles.
func (r RotationRole) IsFavorite() bool { return r == RoleStar || r == RoleFavored }

// Strategy is a team's coaching configuration.
type Strategy struct {
	Tactic         Tactic                  `json:"tactics"`
	ScoringOptions []string                `json:"scoring_options"`
	Rotation       map[string]RotationRole `json:"rotation_settings"`
}

// DefaultStrategy returns a balanced strategy with no options or roles.
func DefaultStrategy() Strategy {
	return Strategy{Tactic: TacticBalanced, ScoringOptions: []string{}, Rotation: map[string]RotationRole{}}
}

// RoleOf returns the rotation role of a player, RoleNormal when unset.
func (s Strategy) RoleOf(playerID string) RotationRole {
	if r, ok := s.Rotation[playerID]; ok && r != "" {
		return r
	}
	return RoleNormal
}

// OptionIndex returns the player's position among the scoring options, or -1.
func (s Strategy) OptionIndex(playerID string) int {
	for i, id := range s.ScoringOptions {
		if id == playerID {
			return i
		}
	}
	return -1
}

// DraftPick is a tradable pick; equality is structural.
type DraftPick struct {
	Year            int    `json:"year"`
	Round           int    `json:"round"`
	OriginalOwnerID string `json:"original_owner_id"`
}

// DefaultTeamColor is used when a team is loaded without a color.
const DefaultTeamColor = "#FFFFFF"

// Team is a franchise. Its roster is not stored here; see LeagueState.Roster.
type Team struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Color      string      `json:"color"`
	Wins       int         `json:"wins"`
	Losses     int         `json:"losses"`
	DraftPicks []DraftPick `json:"draft_picks"`
	Strategy   Strategy    `json:"strategy_settings"`
}

// NewTeam builds a team with default color and strategy.
func NewTeam(id, name string) *Team {
	return &Team{ID: id, Name: name, Color: DefaultTeamColor, DraftPicks: []DraftPick{}, Strategy: DefaultStrategy()}
}

// GamesPlayed is wins+losses.
func (t *Team) GamesPlayed() int { return t.Wins + t.Losses }

// WinPct returns wins over games played, 0 before the first game.
func (t *Team) WinPct() float64 {
	if g := t.GamesPlayed(); g > 0 {
		return float64(t.Wins) / float64(g)
	}
	return 0
}

// Record formats the W-L record.
func (t *Team) Record() string {
	return itoa(t.Wins) + "-" + itoa(t.Losses)
}

// HasPick reports whether the team holds pk.
func (t *Team) HasPick(pk DraftPick) bool {
	for _, p := range t.DraftPicks {
		if p == pk {
			return true
		}
	}
	return false
}

// RemovePick drops pk from the inventory, reporting whether it was held.
func (t *Team) RemovePick(pk DraftPick) bool {
	for i, p := range t.DraftPicks {
		if p == pk {
			t.DraftPicks = append(t.DraftPicks[:i], t.DraftPicks[i+1:]...)
			return true
		}
	}
	return false
}

// PicksInRound returns held picks of the given round in inventory order.
func (t *Team) PicksInRound(round int) []DraftPick {
	var out []DraftPick
	for _, p := range t.DraftPicks {
		if p.Round == round {
			out = append(out, p)
		}
	}
	return out
}

// Payroll sums roster salaries.
func Payroll(roster []*Player) float64 {
	total := 0.0
	for _, p := range roster {
		total += p.Salary
	}
	return total
}

// AverageRating is the mean roster rating, 0 for an empty roster.
func AverageRating(roster []*Player) float64 {
	if len(roster) == 0 {
		return 0
	}
	sum := 0
	for _, p := range roster {
		sum += p.Rating
	}
	return float64(sum) / float64(len(roster))
}

// BucketCounts counts roster players per position bucket.
func BucketCounts(roster []*Player) map[Bucket]int {
	counts := map[Bucket]int{Guards: 0, Forwards: 0, Centers: 0}
	for _, p := range roster {
		counts[p.Position.Bucket()]++
	}
	return counts
}
