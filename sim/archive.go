package sim

// Record categories tracked as single-game league records.
const (
	RecordPoints   = "Points"
	RecordRebounds = "Rebounds"
	RecordAssists  = "Assists"
	RecordSteals   = "Steals"
	RecordBlocks   = "Blocks"
	RecordThrees   = "3PM"
)

// RecordCategories lists the record categories in display order.
var RecordCategories = []string{RecordPoints, RecordRebounds, RecordAssists, RecordSteals, RecordBlocks, RecordThrees}

// RecordValue extracts the stat a record category tracks.
func RecordValue(category string, s StatLine) int {
	switch category {
	case RecordPoints:
		return s.Points
	case RecordRebounds:
		return s.Rebounds
	case RecordAssists:
		return s.Assists
	case RecordSteals:
		return s.Steals
	case RecordBlocks:
		return s.Blocks
	case RecordThrees:
		return s.ThreePM
	}
	return 0
}

// LeagueRecord is the holder of a single-game record.
type LeagueRecord struct {
	Value  int    `json:"val"`
	Holder string `json:"holder"`
	Date   string `json:"date"`
	Team   string `json:"team"`
}

// DefaultLeagueRecords returns empty records for every category.
func DefaultLeagueRecords() map[string]LeagueRecord {
	out := make(map[string]LeagueRecord, len(RecordCategories))
	for _, c := range RecordCategories {
		out[c] = LeagueRecord{Holder: "None", Date: "N/A", Team: "N/A"}
	}
	return out
}

// AllLeagueSlot is one position on the All-League first team.
type AllLeagueSlot struct {
	Pos      string `json:"pos"`
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
}

// SeasonAwards is one archived season in the league history.
type SeasonAwards struct {
	Year           int             `json:"year"`
	ChampionID     string          `json:"champion_id"`
	Champion       string          `json:"champion"`
	ChampionRecord string          `json:"champion_record"`
	ChampionSeed   int             `json:"champion_seed,omitempty"`
	MVPID          string          `json:"mvp_id,omitempty"`
	MVP            string          `json:"mvp"`
	FMVPID         string          `json:"fmvp_id,omitempty"`
	FMVP           string          `json:"fmvp"`
	AllLeague      []AllLeagueSlot `json:"all_league"`
}

// HallOfFameEntry records an inducted retiree.
type HallOfFameEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Pos      string `json:"pos"`
	Year     int    `json:"year"`
	Score    int    `json:"score"`
	Stats    string `json:"stats"`
}

// Achievement is an unlocked GM achievement.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ScoreEntry is one GM score change.
type ScoreEntry struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// DraftLogEntry records one resolved draft pick.
type DraftLogEntry struct {
	Round  int    `json:"round"`
	Pick   int    `json:"pick"`
	Team   string `json:"team"`
	Player string `json:"player"`
}
