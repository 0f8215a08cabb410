package gauge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngle_LinearInverted(t *testing.T) {
	const maxValue = 10000.0
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 180},
		{2500, 135},
		{5000, 90},
		{7500, 45},
		{maxValue, 0},
		{12500, 0},
		{1e12, 0},
		{-10, 180},
		{math.NaN(), 180},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Angle(tt.value, maxValue), 1e-9, "value %v", tt.value)
	}
}

func TestAngle_MatchesFormulaAcrossDomain(t *testing.T) {
	const maxValue = 10000.0
	for v := 0.0; v <= maxValue; v += 137 {
		assert.InDelta(t, 180-(v/maxValue)*180, Angle(v, maxValue), 1e-9)
	}
}

func TestTierForAngle_Boundaries(t *testing.T) {
	tests := []struct {
		angle float64
		want  Tier
	}{
		{180, TierLow},
		{135, TierLow},
		{134.999, TierModerate},
		{90, TierModerate},
		{89.999, TierHigh},
		{45, TierHigh},
		{44.999, TierSevere},
		{0, TierSevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForAngle(tt.angle), "angle %v", tt.angle)
	}
}

func TestTierForValue(t *testing.T) {
	assert.Equal(t, TierLow, TierForValue(0, 10000))
	assert.Equal(t, TierModerate, TierForValue(4000, 10000))
	assert.Equal(t, TierHigh, TierForValue(5000, 10000))
	assert.Equal(t, TierSevere, TierForValue(9000, 10000))
	assert.Equal(t, TierSevere, TierForValue(50000, 10000))
}

func TestTier_ColorsAndLabels(t *testing.T) {
	colors := map[string]bool{}
	for _, tier := range Tiers() {
		colors[tier.Color()] = true
		assert.NotEmpty(t, tier.Label())
	}
	assert.Len(t, colors, 4, "each tier needs its own color")
	assert.Equal(t, "#2ecc71", TierLow.Color())
	assert.Equal(t, "#e74c3c", TierSevere.Color())
	assert.Equal(t, "Crítico", TierSevere.String())
	assert.Equal(t, "#999999", Tier(7).Color())
	assert.Equal(t, "Tier(7)", Tier(7).Label())
}

func TestTier_Span(t *testing.T) {
	from, to := TierLow.Span()
	assert.InDelta(t, 180.0, from, 1e-9)
	assert.InDelta(t, 135.0, to, 1e-9)

	from, to = TierSevere.Span()
	assert.InDelta(t, 45.0, from, 1e-9)
	assert.InDelta(t, 0.0, to, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.InDelta(t, 0.0, Clamp(-5, 10), 0)
	assert.InDelta(t, 10.0, Clamp(50, 10), 0)
	assert.InDelta(t, 3.5, Clamp(3.5, 10), 0)
	assert.InDelta(t, 0.0, Clamp(math.NaN(), 10), 0)
}
