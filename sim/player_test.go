package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_Rating(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  int
	}{
		{"all zero", Attributes{}, 0},
		{"uniform 70", uniformAttrs(70), 70},
		{"uniform 99", uniformAttrs(99), 99},
		{
			// 0.32*90 + 0.08*60 + 0.40*80 + 0.10*(70+80)/2 + 0.10*75
			// = 28.8 + 4.8 + 32 + 7.5 + 7.5 = 80.6
			name:  "mixed profile rounds to nearest",
			attrs: Attributes{Inside: 60, Outside: 90, Rebound: 50, Passing: 75, Consistency: 70, Block: 40, Steal: 55, Defense: 80},
			want:  81,
		},
		{
			// scoring uses max/min symmetrically
			name:  "inside heavy",
			attrs: Attributes{Inside: 90, Outside: 60, Rebound: 50, Passing: 75, Consistency: 70, Block: 40, Steal: 55, Defense: 80},
			want:  81,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attrs.Rating())
		})
	}
}

func TestPlayer_RatingIsPureFunctionOfAttributes(t *testing.T) {
	// GIVEN a player with arbitrary attributes
	p := NewPlayer("p1", "Jordan Smith", SmallForward, 24, Attributes{Inside: 77, Outside: 64, Rebound: 58, Passing: 69, Consistency: 71, Block: 45, Steal: 66, Defense: 73})
	first := p.Rating

	// WHEN the rating is recomputed on unchanged attributes
	p.Recompute()

	// THEN it is identical
	assert.Equal(t, first, p.Rating)
	assert.Equal(t, p.Attributes.Rating(), p.Rating)
}

func TestPlayer_AdjustAttribute_ClampsAndRecomputes(t *testing.T) {
	p := testPlayer("p1", Center, 60)
	before := p.Rating

	applied := p.AdjustAttribute(AttrDefense, 50, 25, 99)
	assert.Equal(t, 39, applied)
	assert.Equal(t, 99, p.Attributes.Defense)
	assert.Greater(t, p.Rating, before)
	assert.Equal(t, p.Attributes.Rating(), p.Rating)

	applied = p.AdjustAttribute(AttrSteal, -80, 25, 99)
	assert.Equal(t, -35, applied)
	assert.Equal(t, 25, p.Attributes.Steal)
}

func TestAttr_GetSetRoundTrip(t *testing.T) {
	var at Attributes
	for a := AttrInside; a <= AttrDefense; a++ {
		at.set(a, int(a)+10)
	}
	for a := AttrInside; a <= AttrDefense; a++ {
		assert.Equal(t, int(a)+10, at.Get(a), a.String())
	}
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "J. Smith", MaskName("John Smith"))
	assert.Equal(t, "M. Jordan", MaskName("Michael Jeffrey Jordan"))
	assert.Equal(t, "Kobe", MaskName("Kobe"))
	assert.Equal(t, "", MaskName(""))
}

func TestNormalizeSalary(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{raw: 12.5, want: 12.5},
		{raw: 500, want: 500},
		{raw: 3_450_000, want: 3.45},
		{raw: 1_234_567, want: 1.23},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeSalary(tt.raw), 1e-9)
	}
}

func TestDerivePotential_BoundedByAgeBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		young := DerivePotential(21, 70, rng)
		require.GreaterOrEqual(t, young, 75)
		require.LessOrEqual(t, young, 85)

		prime := DerivePotential(27, 70, rng)
		require.GreaterOrEqual(t, prime, 70)
		require.LessOrEqual(t, prime, 75)

		assert.Equal(t, 70, DerivePotential(33, 70, rng))
		assert.Equal(t, 99, DerivePotential(20, 98, rng))
	}
}

func TestPosition_Bucket(t *testing.T) {
	assert.Equal(t, Guards, PointGuard.Bucket())
	assert.Equal(t, Guards, ShootingGuard.Bucket())
	assert.Equal(t, Forwards, SmallForward.Bucket())
	assert.Equal(t, Forwards, PowerForward.Bucket())
	assert.Equal(t, Centers, Center.Bucket())
	assert.Equal(t, Forwards, Position("WING").Bucket())
	assert.Equal(t, "G", Guards.String())
}

func TestPlayer_ResetNegotiation(t *testing.T) {
	p := testPlayer("p1", PointGuard, 60)
	p.Negotiation = Negotiation{Allowed: false, Patience: 0, MaxPatience: 5}

	p.ResetNegotiation(DefaultPatience)

	assert.True(t, p.Negotiation.Allowed)
	assert.Equal(t, 5, p.Negotiation.Patience)
	assert.Equal(t, 5, p.Negotiation.MaxPatience)
}
