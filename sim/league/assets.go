package league

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
)

// Trade assets are named by reference strings: a player ID, or a draft pick
// written "{year}R{round}@{original owner}", e.g. "2027R1@T03".

// PickRef formats a draft pick reference.
func PickRef(pk sim.DraftPick) string {
	return fmt.Sprintf("%dR%d@%s", pk.Year, pk.Round, pk.OriginalOwnerID)
}

// ParsePickRef parses a draft pick reference.
func ParsePickRef(ref string) (sim.DraftPick, bool) {
	head, owner, found := strings.Cut(ref, "@")
	if !found || owner == "" {
		return sim.DraftPick{}, false
	}
	yearStr, roundStr, found := strings.Cut(head, "R")
	if !found {
		return sim.DraftPick{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return sim.DraftPick{}, false
	}
	round, err := strconv.Atoi(roundStr)
	if err != nil || round < 1 {
		return sim.DraftPick{}, false
	}
	return sim.DraftPick{Year: year, Round: round, OriginalOwnerID: owner}, true
}

// ResolveAssets turns references into trade assets. Pick references resolve
// to the pick itself; ownership is checked by the trade validation.
func ResolveAssets(s *sim.LeagueState, refs []string) ([]economy.Asset, error) {
	out := make([]economy.Asset, 0, len(refs))
	for _, ref := range refs {
		if pk, isPick := ParsePickRef(ref); isPick {
			out = append(out, economy.PickAsset{Pick: pk})
			continue
		}
		p := s.Player(ref)
		if p == nil {
			return nil, fmt.Errorf("unknown asset %q", ref)
		}
		out = append(out, economy.PlayerAsset{Player: p})
	}
	return out, nil
}

// FormatAssets renders assets as references.
func FormatAssets(assets []economy.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		switch a := a.(type) {
		case economy.PlayerAsset:
			out = append(out, a.Player.ID)
		case economy.PickAsset:
			out = append(out, PickRef(a.Pick))
		}
	}
	return out
}
