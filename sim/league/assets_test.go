package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/economy"
	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func TestParsePickRef(t *testing.T) {
	tests := []struct {
		ref  string
		want sim.DraftPick
		ok   bool
	}{
		{"2027R1@T03", sim.DraftPick{Year: 2027, Round: 1, OriginalOwnerID: "T03"}, true},
		{"2026R2@DT1", sim.DraftPick{Year: 2026, Round: 2, OriginalOwnerID: "DT1"}, true},
		{"T03_P1", sim.DraftPick{}, false},
		{"2027R1@", sim.DraftPick{}, false},
		{"2027X1@T03", sim.DraftPick{}, false},
		{"2027R0@T03", sim.DraftPick{}, false},
		{"yearR1@T03", sim.DraftPick{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ParsePickRef(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.ref, PickRef(got))
			}
		})
	}
}

func TestResolveAssets(t *testing.T) {
	s := testutil.EvenLeague(4, 60)

	assets, err := ResolveAssets(s, []string{"T02_P3", "2027R1@T02"})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "T02_P3", assets[0].(economy.PlayerAsset).Player.ID)
	assert.Equal(t, 2027, assets[1].(economy.PickAsset).Pick.Year)
	assert.Equal(t, []string{"T02_P3", "2027R1@T02"}, FormatAssets(assets))

	_, err = ResolveAssets(s, []string{"T02_P3", "ghost"})
	assert.ErrorContains(t, err, `unknown asset "ghost"`)
}
