package gauge

import (
	"fmt"
	"math"
)

// Tier is a severity band of the gauge, ordered by increasing severity.
type Tier int

// Severity tiers. TierLow covers the left quarter of the dial.
const (
	TierLow Tier = iota
	TierModerate
	TierHigh
	TierSevere
)

// Tier boundaries in degrees. An angle at a boundary belongs to the less
// severe tier.
const (
	severeBelow   = 45.0
	highBelow     = 90.0
	moderateBelow = 135.0
	fullSweep     = 180.0
)

//nolint:gochecknoglobals // Constant lookup tables
var (
	tierColors = [...]string{"#2ecc71", "#f1c40f", "#e67e22", "#e74c3c"}
	tierLabels = [...]string{"Baixo", "Moderado", "Alto", "Crítico"}
)

// Tiers lists every tier from least to most severe.
func Tiers() []Tier {
	return []Tier{TierLow, TierModerate, TierHigh, TierSevere}
}

// Color returns the hex display color of the tier.
func (t Tier) Color() string {
	if t < TierLow || t > TierSevere {
		return "#999999"
	}
	return tierColors[t]
}

// Label returns the display label of the tier.
func (t Tier) Label() string {
	if t < TierLow || t > TierSevere {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierLabels[t]
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return t.Label()
}

// Span returns the angles covered by the tier, from its high edge to its
// low edge (TierLow spans 180°→135°).
func (t Tier) Span() (from, to float64) {
	const quarter = fullSweep / 4
	from = fullSweep - float64(t)*quarter
	return from, from - quarter
}

// Clamp limits v to [0, maxValue]. NaN maps to 0.
func Clamp(v, maxValue float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > maxValue:
		return maxValue
	default:
		return v
	}
}

// Angle maps a value to the needle angle: 0 → 180°, maxValue → 0°, linear
// in between. Values above maxValue are clamped first.
func Angle(v, maxValue float64) float64 {
	return fullSweep - Clamp(v, maxValue)/maxValue*fullSweep
}

// TierForAngle returns the severity tier of a needle angle.
func TierForAngle(angle float64) Tier {
	switch {
	case angle < severeBelow:
		return TierSevere
	case angle < highBelow:
		return TierHigh
	case angle < moderateBelow:
		return TierModerate
	default:
		return TierLow
	}
}

// TierForValue is TierForAngle(Angle(v, maxValue)).
func TierForValue(v, maxValue float64) Tier {
	return TierForAngle(Angle(v, maxValue))
}
