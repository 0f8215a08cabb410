package breakdown

import "github.com/rshade/carbonmeter/internal/report"

//nolint:gochecknoglobals // Constant palette
var reductionColors = []string{"#36a2eb", "#4bc0c0", "#ffce56", "#ff6384", "#9966ff"}

// ReductionBar is one recommendation scaled for display.
type ReductionBar struct {
	Action    string
	Potential float64
	// Fraction is Potential relative to the largest potential, in [0, 1].
	Fraction float64
	Color    string
}

// Reductions scales recommendations against the largest reduction
// potential. Order is preserved; colors cycle through a fixed palette.
// Negative potentials are shown as 0.
func Reductions(recs []report.Recommendation) []ReductionBar {
	peak := 0.0
	for _, r := range recs {
		peak = max(peak, r.Potential)
	}
	bars := make([]ReductionBar, 0, len(recs))
	for i, r := range recs {
		b := ReductionBar{
			Action:    r.Action,
			Potential: max(r.Potential, 0),
			Color:     reductionColors[i%len(reductionColors)],
		}
		if peak > 0 {
			b.Fraction = b.Potential / peak
		}
		bars = append(bars, b)
	}
	return bars
}

// TotalPotential sums the reduction potential of recs.
func TotalPotential(recs []report.Recommendation) float64 {
	var sum float64
	for _, r := range recs {
		sum += max(r.Potential, 0)
	}
	return sum
}
